package usecase

import (
	"context"
	"testing"

	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImagesInfra struct {
	uploaded *UploadImageReq
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	f.uploaded = req
	return &UploadImageRes{ObjectKey: "products/test.jpg", URL: "http://cdn.local/products/test.jpg"}, nil
}

func TestUploadImage(t *testing.T) {
	infra := &fakeImagesInfra{}
	uc := NewUploadUC(infra, &cfg.MinIOCfg{MaxFileSize: 1024}, nopLogger{})

	res, err := uc.UploadImage(context.Background(), NewUploadImageReq([]byte{0xFF, 0xD8}, "image/jpeg", 2, "photo.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "products/test.jpg", res.ObjectKey)
	require.NotNil(t, infra.uploaded)
}

func TestUploadImageRejected(t *testing.T) {
	uc := NewUploadUC(&fakeImagesInfra{}, &cfg.MinIOCfg{MaxFileSize: 10}, nopLogger{})

	_, err := uc.UploadImage(context.Background(), NewUploadImageReq(nil, "image/png", 0, "empty.png"))
	assert.ErrorIs(t, err, e.ErrNoFile)

	_, err = uc.UploadImage(context.Background(), NewUploadImageReq(make([]byte, 11), "image/png", 11, "big.png"))
	assert.ErrorIs(t, err, e.ErrFileTooLarge)

	_, err = uc.UploadImage(context.Background(), NewUploadImageReq([]byte("%PDF"), "application/pdf", 4, "doc.pdf"))
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
