package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"
)

// ArticlesURLPrefix is the route the local article images are served under.
const ArticlesURLPrefix = "/uploads/articles"

type LocalStore struct {
	dir string
}

func NewLocalStore(uploadDir string) *LocalStore {
	return &LocalStore{dir: filepath.Join(uploadDir, "articles")}
}

// Dir is the directory images are written to.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uniqueName(file.Filename, time.Now())
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return path.Join(ArticlesURLPrefix, name), nil
}
