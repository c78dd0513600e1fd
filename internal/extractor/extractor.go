package extractor

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"
)

// TextExtractor converts an uploaded document stream into plain text. The
// actual document parsing is a collaborator concern; PlainText covers the
// text-based formats the API accepts.
type TextExtractor interface {
	Extract(ctx context.Context, r io.Reader, mimeType string) (string, error)
}

const maxExtractBytes = 1 << 20 // 1MB of text is plenty for a resume

type PlainText struct{}

func NewPlainText() *PlainText { return &PlainText{} }

func (PlainText) Extract(_ context.Context, r io.Reader, _ string) (string, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxExtractBytes))
	if err != nil {
		return "", err
	}

	// strip whatever isn't valid text so the prompt stays clean
	if !utf8.Valid(b) {
		b = []byte(strings.ToValidUTF8(string(b), ""))
	}
	return strings.TrimSpace(string(b)), nil
}
