package storage

import (
	"context"
	"fmt"

	"farmhub/config"
	"farmhub/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores and removes user avatars.
type StorageService interface {
	// UploadAvatar uploads image data (a base64 data URI or remote URL) and
	// returns the stored reference.
	UploadAvatar(ctx context.Context, data string) (models.Avatar, error)
	// DeleteAvatar removes a previously stored avatar by its public ID.
	DeleteAvatar(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage initializes a Cloudinary-backed storage service from
// the application config.
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadAvatar uploads an avatar into the avatars folder.
func (s *CloudinaryStorage) UploadAvatar(ctx context.Context, data string) (models.Avatar, error) {
	result, err := s.cld.Upload.Upload(ctx, data, uploader.UploadParams{Folder: "avatars"})
	if err != nil {
		return models.Avatar{}, fmt.Errorf("failed to upload avatar: %w", err)
	}
	if result.PublicID == "" {
		return models.Avatar{}, fmt.Errorf("no public ID returned for avatar upload")
	}
	return models.Avatar{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeleteAvatar removes a stored avatar.
func (s *CloudinaryStorage) DeleteAvatar(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete avatar %s: %w", publicID, err)
	}
	return nil
}
