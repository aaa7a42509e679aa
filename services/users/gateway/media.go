package gateway

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/caronago/caronago/internal/pkg/apperrors"
	"github.com/caronago/caronago/internal/pkg/models"
)

const maxPhotoBytes = 5 << 20

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

func photoEndpoint(userID uuid.UUID, ext string) string {
	return "/photos/" + userID.String() + ext
}

// UploadUserPhoto stores a profile photo under a deterministic path derived
// from the user id and returns its public URL
func (g *UserGW) UploadUserPhoto(ctx context.Context, userID uuid.UUID, photo *models.PhotoUpload) (string, error) {
	ext, ok := photoExtensions[photo.ContentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %s: %w", photo.ContentType, apperrors.ErrUpload)
	}
	if len(photo.Data) == 0 || len(photo.Data) > maxPhotoBytes {
		return "", fmt.Errorf("photo must be between 1 byte and %d bytes: %w", maxPhotoBytes, apperrors.ErrUpload)
	}

	endpoint := photoEndpoint(userID, ext)
	if err := g.media.PutBytes(ctx, endpoint, photo.Data, photo.ContentType); err != nil {
		return "", fmt.Errorf("%v: %w", err, apperrors.ErrUpload)
	}

	return g.cfg.Media.PublicURL + endpoint, nil
}

// DeleteUserPhoto removes the stored profile photo. Both extensions are
// tried since the stored one is not tracked separately.
func (g *UserGW) DeleteUserPhoto(ctx context.Context, userID uuid.UUID) error {
	var lastErr error
	for _, ext := range photoExtensions {
		if err := g.media.Delete(ctx, photoEndpoint(userID, ext)); err != nil {
			lastErr = err
		} else {
			return nil
		}
	}
	if lastErr != nil {
		return fmt.Errorf("%v: %w", lastErr, apperrors.ErrDelete)
	}
	return nil
}
