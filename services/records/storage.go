package records

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService is the document store behind medical records. Only the
// reference (public ID and URL) flows back into the metadata repository.
type StorageService interface {
	Upload(ctx context.Context, localFilePath, folder string) (publicID, url string, err error)
	Delete(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage wraps an initialized Cloudinary client.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

// Upload stores the file under the given folder and returns its
// public ID and delivery URL.
func (s *CloudinaryStorage) Upload(ctx context.Context, localFilePath, folder string) (string, string, error) {
	resp, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return resp.PublicID, resp.SecureURL, nil
}

// Delete removes the stored document.
func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}
