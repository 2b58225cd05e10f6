// Package storage saves uploaded article images and returns their public URL.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageStore persists an uploaded image and returns the URL it is served at.
type ImageStore interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// New returns a Cloudinary-backed store when cloudinaryURL is set, and a
// store writing under uploadDir otherwise.
func New(uploadDir, cloudinaryURL string) (ImageStore, error) {
	if cloudinaryURL != "" {
		return NewCloudinaryStore(cloudinaryURL, "articles")
	}
	return NewLocalStore(uploadDir), nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// uniqueName builds "<unix-millis>_<uuid>_<sanitized base name>".
func uniqueName(original string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, `\`, "/"))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%d_%s_%s", now.UnixMilli(), uuid.NewString(), base)
}
