package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/pathwise/internal/extractor"
	"github.com/yoockh/pathwise/internal/models"
	pgrepo "github.com/yoockh/pathwise/internal/repositories/postgres"
	"github.com/yoockh/pathwise/internal/storage"
	"github.com/yoockh/pathwise/internal/utils"
)

// ExtractionResult is what the upload endpoint returns: the skills now on
// the user's profile plus the audit row id. Zero skills is a soft outcome.
type ExtractionResult struct {
	ResumeID string         `json:"resume_id"`
	Skills   []models.Skill `json:"skills"`
}

type ResumeService interface {
	UploadAndExtract(ctx context.Context, userID, fileName, mimeType, objectName string, r io.Reader) (*ExtractionResult, error)
}

type resumeService struct {
	resumes   pgrepo.ResumeRepository
	skills    SkillService
	engine    RecommendationService
	uploader  storage.Uploader
	extractor extractor.TextExtractor
	log       *logrus.Logger
}

func NewResumeService(
	resumes pgrepo.ResumeRepository,
	skills SkillService,
	engine RecommendationService,
	uploader storage.Uploader,
	ex extractor.TextExtractor,
	log *logrus.Logger,
) ResumeService {
	return &resumeService{
		resumes:   resumes,
		skills:    skills,
		engine:    engine,
		uploader:  uploader,
		extractor: ex,
		log:       log,
	}
}

func (s *resumeService) UploadAndExtract(ctx context.Context, userID, fileName, mimeType, objectName string, r io.Reader) (*ExtractionResult, error) {
	const op = "ResumeService.UploadAndExtract"

	if userID == "" || objectName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and object_name are required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	// both the uploader and the extractor need the bytes; the handler caps
	// upload size, so buffering once is fine
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read upload", err)
	}

	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, bytes.NewReader(data))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	text, err := s.extractor.Extract(ctx, bytes.NewReader(data), mimeType)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "could not read text from document", err)
	}
	if text == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "document contains no readable text", nil)
	}

	found := s.engine.ExtractSkillsFromText(ctx, userID, text)

	rows, err := s.skills.AddBatch(ctx, userID, found)
	if err != nil {
		return nil, err
	}

	payload, merr := json.Marshal(found)
	if merr != nil {
		payload = []byte("[]")
	}
	resume := &models.Resume{
		ID:               uuid.NewString(),
		UserID:           userID,
		FileName:         fileName,
		FilePath:         storedPath,
		ExtractedPayload: payload,
		UploadAt:         time.Now().UTC(),
	}
	if err := s.resumes.Insert(ctx, resume); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume record", err)
	}

	if s.log != nil {
		s.log.WithFields(logrus.Fields{
			"user_id":   userID,
			"resume_id": resume.ID,
			"skills":    len(rows),
		}).Info("resume processed")
	}

	return &ExtractionResult{ResumeID: resume.ID, Skills: rows}, nil
}
