package upload

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		decimals int
		expected string
	}{
		{
			name:     "Zero bytes",
			bytes:    0,
			decimals: 2,
			expected: "0 Bytes",
		},
		{
			name:     "Bytes",
			bytes:    512,
			decimals: 2,
			expected: "512.00 Bytes",
		},
		{
			name:     "Kilobytes",
			bytes:    12636,
			decimals: 2,
			expected: "12.34 KB",
		},
		{
			name:     "Megabytes",
			bytes:    5 * 1024 * 1024,
			decimals: 2,
			expected: "5.00 MB",
		},
		{
			name:     "No decimals",
			bytes:    2048,
			decimals: 0,
			expected: "2 KB",
		},
		{
			name:     "Negative decimals clamped",
			bytes:    1024,
			decimals: -1,
			expected: "1 KB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFileSize(tt.bytes, tt.decimals))
		})
	}
}

func TestLocalUploader_Upload(t *testing.T) {
	dir := t.TempDir()
	uploader, err := NewLocalUploader(dir, "http://localhost:5000/", zerolog.Nop())
	require.NoError(t, err)

	result, err := uploader.Upload(context.Background(), strings.NewReader("fake image bytes"), FileInfo{
		Name:        "rice.jpg",
		ContentType: "image/jpeg",
		Size:        16,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.SecureURL, "http://localhost:5000/uploads/"))
	assert.True(t, strings.HasSuffix(result.SecureURL, ".jpg"))

	// The stored file carries the uploaded contents
	name := result.SecureURL[strings.LastIndex(result.SecureURL, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalUploader_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	uploader, err := NewLocalUploader(dir, "http://localhost:5000", zerolog.Nop())
	require.NoError(t, err)

	first, err := uploader.Upload(context.Background(), strings.NewReader("a"), FileInfo{Name: "img.png", Size: 1})
	require.NoError(t, err)

	second, err := uploader.Upload(context.Background(), strings.NewReader("b"), FileInfo{Name: "img.png", Size: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.SecureURL, second.SecureURL)
}

func TestNewLocalUploader_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalUploader(dir, "http://localhost:5000", zerolog.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
