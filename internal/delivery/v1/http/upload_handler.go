package http

import (
	"net/http"

	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/partlane/go-backend/pkg/logger"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUC
	cfg           *cfg.MinIOCfg
	logger        logger.Logger
}

func NewUploadHandler(uploadUsecase usecase.UploadUC, cfg *cfg.MinIOCfg, logger logger.Logger) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase, cfg: cfg, logger: logger}
}

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// uploadImage
//
//	@Summary		Загрузка изображения товара
//	@Description	Принимает одно изображение до 10MB в поле file
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Файл изображения"
//	@Success		201		{object}	uploadResponse
//	@Failure		400		{object}	ErrorResponse	"Нет файла, не изображение или слишком большой"
//	@Router			/admin/upload [post]
func (u *UploadHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	// Запас поверх лимита файла на служебные части multipart
	r.Body = http.MaxBytesReader(w, r.Body, u.cfg.MaxFileSize+1<<20)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		WriteError(w, e.ErrNoFile)
		return
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, u.cfg.MaxFileSize)
	if err != nil {
		u.logger.Warnf("read upload failed: %v", err)
		WriteError(w, err)
		return
	}

	res, err := u.uploadUsecase.UploadImage(r.Context(), usecase.NewUploadImageReq(data, mimeType, int64(len(data)), fh.Filename))
	if err != nil {
		u.logger.Warnf("upload image failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, uploadResponse{
		Key: res.ObjectKey,
		URL: res.URL,
	})
}
