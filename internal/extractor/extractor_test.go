package extractor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextExtract(t *testing.T) {
	ex := NewPlainText()

	out, err := ex.Extract(context.Background(), strings.NewReader("  hello resume \n"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "hello resume", out)
}

func TestPlainTextExtract_StripsInvalidUTF8(t *testing.T) {
	ex := NewPlainText()

	out, err := ex.Extract(context.Background(), strings.NewReader("ok\xff\xfetext"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "oktext", out)
}

func TestPlainTextExtract_CapsInput(t *testing.T) {
	ex := NewPlainText()

	big := strings.Repeat("a", maxExtractBytes+100)
	out, err := ex.Extract(context.Background(), strings.NewReader(big), "text/plain")
	require.NoError(t, err)
	assert.Len(t, out, maxExtractBytes)
}
