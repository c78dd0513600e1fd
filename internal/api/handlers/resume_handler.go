package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yoockh/pathwise/internal/services"
	"github.com/yoockh/pathwise/internal/utils"
)

const maxResumeUploadBytes = 10 << 20

type ResumeHandler struct {
	resumes services.ResumeService
}

func NewResumeHandler(resumes services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// Extract accepts a multipart "file" field, stores the document and adds the
// skills found in it to the user's profile.
func (h *ResumeHandler) Extract(c *gin.Context) {
	const op = "ResumeHandler.Extract"

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "a multipart 'file' field is required", err))
		return
	}
	if fileHeader.Size > maxResumeUploadBytes {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "file exceeds the 10MB limit", nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to open uploaded file", err))
		return
	}
	defer f.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	objectName := "resumes/" + userID + "/" + uuid.NewString() + filepath.Ext(fileHeader.Filename)

	result, err := h.resumes.UploadAndExtract(c.Request.Context(), userID, fileHeader.Filename, mimeType, objectName, f)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
