package usecase

import "context"

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
