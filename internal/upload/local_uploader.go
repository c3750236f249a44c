package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// localUploader implements Uploader by writing files into a directory served
// under /uploads. Used when S3 is disabled.
type localUploader struct {
	dir     string
	baseURL string
	logger  zerolog.Logger
}

// NewLocalUploader creates an uploader that stores images on the local file
// system. The directory is created if it does not exist.
func NewLocalUploader(dir, baseURL string, logger zerolog.Logger) (Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	logger = logger.With().Str("component", "local-uploader").Logger()
	logger.Info().Str("dir", dir).Msg("local uploader initialised")

	return &localUploader{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Upload writes the file under the upload directory and returns the URL it
// will be served from.
func (u *localUploader) Upload(ctx context.Context, src io.Reader, info FileInfo) (*Result, error) {
	name := objectName(info.Name)
	dst := filepath.Join(u.dir, name)

	file, err := os.Create(dst)
	if err != nil {
		u.logger.Error().Err(err).Str("path", dst).Msg("failed to create upload file")
		return nil, fmt.Errorf("failed to create upload file %s: %w", dst, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, src); err != nil {
		u.logger.Error().Err(err).Str("path", dst).Msg("failed to write upload file")
		return nil, fmt.Errorf("failed to write upload file %s: %w", dst, err)
	}

	u.logger.Info().
		Str("file", name).
		Int64("size", info.Size).
		Msg("image stored on local file system")

	return &Result{SecureURL: u.baseURL + "/uploads/" + name}, nil
}
