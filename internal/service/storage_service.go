package service

import (
	"context"

	"companyreg/internal/dto"
)

type StorageService interface {
	// UploadLogo stores the asset and returns its stable URL path. The
	// upload is rejected for empty files, disallowed extensions and
	// oversized payloads.
	UploadLogo(ctx context.Context, logo dto.LogoUpload) (string, error)
}
