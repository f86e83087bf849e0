package usecase

import (
	"context"
	"strings"

	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
)

// UploadUseCase принимает изображения товаров и отдает публичный URL.
// Валидация размера и типа происходит здесь, до обращения к хранилищу.
type UploadUseCase struct {
	imagesInfra ImagesInfra
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
}

func NewUploadUC(imagesInfra ImagesInfra, cfg *cfg.MinIOCfg, logger logger.Logger) *UploadUseCase {
	return &UploadUseCase{
		imagesInfra: imagesInfra,
		cfg:         cfg,
		logger:      logger,
	}
}

func (u *UploadUseCase) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	const op = "UploadUseCase.UploadImage"

	if len(req.Data) == 0 {
		return nil, e.ErrNoFile
	}
	if req.Size > u.cfg.MaxFileSize {
		return nil, e.ErrFileTooLarge
	}
	if !strings.HasPrefix(req.MimeType, "image/") {
		return nil, e.ErrUnsupportedMediaType
	}

	res, err := u.imagesInfra.UploadImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.logger.Debugf("image uploaded: %s (%d bytes)", res.ObjectKey, req.Size)

	return res, nil
}
