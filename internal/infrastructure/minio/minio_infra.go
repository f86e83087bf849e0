package minio

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/domain"
	"github.com/partlane/go-backend/internal/infrastructure"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
)

// MinioInfrastructure управляет загрузкой изображений товаров в MinIO
// и формированием публичных URL для них.
type MinioInfrastructure struct {
	minioRepo usecase.ImageRepository
	cfg       *cfg.MinIOCfg
	logger    logger.Logger
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo: minioRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// UploadImage загружает изображение под случайным ключом, чтобы имена
// клиентских файлов не пересекались, и возвращает публичный URL.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (*usecase.UploadImageRes, error) {
	const op = "MinioInfrastructure.UploadImage"

	imageID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(req.MimeType)
	if err != nil {
		return nil, fmt.Errorf("invalid mime type %s for %s: %w", req.MimeType, req.Name, err)
	}

	objKey := fmt.Sprintf("products/%s.%s", imageID, ext)
	image := domain.NewImage(imageID, m.cfg.BucketName, objKey, req.Data, &req.Size, &req.MimeType)

	key, err := m.minioRepo.Upload(ctx, image)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	m.logger.Debugf("%s: uploaded %s as %s", op, req.Name, key)

	return &usecase.UploadImageRes{
		ObjectKey: key,
		URL:       m.publicURL(key),
	}, nil
}

// publicURL собирает URL, по которому объект доступен клиентам.
func (m *MinioInfrastructure) publicURL(key string) string {
	base := strings.TrimRight(m.cfg.PublicEndpoint, "/")
	return fmt.Sprintf("%s/%s/%s", base, m.cfg.BucketName, key)
}
