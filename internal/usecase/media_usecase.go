package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/repo/persistent"
	"imersao-completa/pkg/logger"

	"github.com/google/uuid"
)

const MaxUploadSize = 5 << 20

// Upload folders accepted by MediaUseCase.Upload.
const (
	FolderPosts   = "posts"
	FolderBanners = "banners"
	FolderAvatars = "avatars"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// FileUploader stores objects and returns their public URLs.
type FileUploader interface {
	UploadFile(key string, body io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type MediaUseCase interface {
	Upload(ctx context.Context, userID, folder, filename, contentType string, body io.Reader) (string, error)
	UploadAvatar(ctx context.Context, userID, filename, contentType string, body io.Reader) (*entity.Profile, error)
}

type mediaUseCase struct {
	uploader    FileUploader
	profileRepo persistent.ProfileRepository
	logger      *logger.Logger
}

func NewMediaUseCase(uploader FileUploader, profileRepo persistent.ProfileRepository, logger *logger.Logger) MediaUseCase {
	return &mediaUseCase{
		uploader:    uploader,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *mediaUseCase) Upload(ctx context.Context, userID, folder, filename, contentType string, body io.Reader) (string, error) {
	if folder != FolderPosts && folder != FolderBanners && folder != FolderAvatars {
		return "", fmt.Errorf("%w: unknown upload folder %q", entity.ErrInvalidInput, folder)
	}
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: unsupported content type %q", entity.ErrInvalidInput, contentType)
	}

	key := ObjectKey(folder, userID, filename)
	url, err := uc.uploader.UploadFile(key, body, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	uc.logger.Info("Uploaded %s for user %s", key, userID)
	return url, nil
}

// UploadAvatar stores the new image, points the profile at it and removes
// the previous avatar object when it was one of ours.
func (uc *mediaUseCase) UploadAvatar(ctx context.Context, userID, filename, contentType string, body io.Reader) (*entity.Profile, error) {
	previous, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	url, err := uc.Upload(ctx, userID, FolderAvatars, filename, contentType, body)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.Update(ctx, userID, map[string]interface{}{"avatar_url": url})
	if err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	if previous.AvatarURL != nil {
		if key, ok := avatarKey(*previous.AvatarURL, userID); ok {
			if err := uc.uploader.DeleteFile(key); err != nil {
				uc.logger.Warn("Failed to delete old avatar %s: %v", key, err)
			}
		}
	}
	return profile, nil
}

// avatarKey recovers the object key from a URL produced for userID's avatars.
func avatarKey(url, userID string) (string, bool) {
	prefix := FolderAvatars + "/" + userID + "/"
	i := strings.LastIndex(url, prefix)
	if i < 0 {
		return "", false
	}
	return url[i:], true
}

// ObjectKey builds folder/userID/<uuid><ext>.
func ObjectKey(folder, userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s", folder, userID, uuid.New().String(), ext)
}
