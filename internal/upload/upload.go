package upload

import (
	"context"
	"fmt"
	"io"
	"math"
)

// FileInfo describes an incoming file as read from the multipart form.
type FileInfo struct {
	Name        string
	ContentType string
	Size        int64
}

// Result is what the remote image host hands back after a successful upload.
type Result struct {
	SecureURL string
}

// Uploader defines the interface for pushing a product image to its host.
type Uploader interface {
	// Upload stores the file contents and returns the public URL.
	Upload(ctx context.Context, src io.Reader, info FileInfo) (*Result, error)
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatFileSize renders a byte count as a human-readable size with the given
// number of decimal places, e.g. FormatFileSize(12634, 2) == "12.34 KB".
func FormatFileSize(bytes int64, decimals int) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(sizeUnits) {
		exp = len(sizeUnits) - 1
	}

	value := float64(bytes) / math.Pow(1024, float64(exp))
	return fmt.Sprintf("%.*f %s", decimals, value, sizeUnits[exp])
}
