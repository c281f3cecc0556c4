package blob

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLinker(t *testing.T) *RecordingLinker {
	t.Helper()
	linker, err := NewRecordingLinker(context.Background(), Config{
		AccessKeyID:     "AKIA",
		Endpoint:        "http://localhost:9000",
		Expiry:          5 * time.Minute,
		PathStyle:       true,
		Region:          "us-east-1",
		SecretAccessKey: "SECRET",
	})
	require.NoError(t, err)
	return linker
}

func TestLink_PresignsS3References(t *testing.T) {
	linker := newTestLinker(t)

	link, err := linker.Link(context.Background(), "s3://recordings/2026/s1.mp4")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "http://localhost:9000/recordings/2026/s1.mp4?"), link)
	assert.Contains(t, link, "X-Amz-Signature=")
	assert.Contains(t, link, "X-Amz-Expires=300")
}

func TestLink_PassesThroughHTTP(t *testing.T) {
	linker := newTestLinker(t)

	link, err := linker.Link(context.Background(), "https://videos.example.com/s1")
	require.NoError(t, err)
	assert.Equal(t, "https://videos.example.com/s1", link)
}

func TestLink_RejectsOtherReferences(t *testing.T) {
	linker := newTestLinker(t)

	tests := []string{
		"ftp://files.example.com/s1.mp4",
		"s3://bucket-only",
		"/local/path.mp4",
	}
	for _, ref := range tests {
		t.Run(ref, func(t *testing.T) {
			_, err := linker.Link(context.Background(), ref)
			assert.Error(t, err)
		})
	}
}
