package impl

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"companyreg/internal/dto"
	"companyreg/internal/validate"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const maxLogoSize = 15 * 1024 * 1024

var (
	ErrNoFile          = errors.New("no file provided or file is empty")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrInvalidFileType = errors.New("file must be a jpg, jpeg, png")
)

// MinioStorageService stores company logos in an S3-compatible bucket and
// hands back stable URL paths under the configured public base.
type MinioStorageService struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewMinioStorageService(endpoint, accessKey, secretKey, bucket, publicBaseURL string, useSSL bool) (*MinioStorageService, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	svc := &MinioStorageService{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
	if err := svc.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *MinioStorageService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

func (s *MinioStorageService) UploadLogo(ctx context.Context, logo dto.LogoUpload) (string, error) {
	ext, err := checkLogo(logo)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("logos/%s%s", uuid.New().String(), ext)
	_, err = s.client.PutObject(ctx, s.bucket, objectKey, logo.Content, logo.Size, minio.PutObjectOptions{
		ContentType: contentTypeForExt(ext),
	})
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}
	return s.publicBaseURL + "/" + objectKey, nil
}

func checkLogo(logo dto.LogoUpload) (string, error) {
	if logo.Content == nil || logo.Size == 0 {
		return "", ErrNoFile
	}
	if logo.Size > maxLogoSize {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(logo.Filename))
	if !validate.AllowedLogoExtension(logo.Filename) {
		return "", ErrInvalidFileType
	}
	return ext, nil
}

// DisabledStorageService rejects every upload. Used when no object
// storage endpoint is configured.
type DisabledStorageService struct{}

func (DisabledStorageService) UploadLogo(ctx context.Context, logo dto.LogoUpload) (string, error) {
	return "", errors.New("logo storage is not configured")
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
