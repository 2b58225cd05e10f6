package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uniqueName(file.Filename, time.Now())
	publicID := strings.TrimSuffix(name, filepath.Ext(name))
	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:    s.folder,
		PublicID:  publicID,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
