package usecase

import "context"

// UploadImageInput is one image file from the admin console.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadOutput struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadUsecase stores catalog images in object storage.
type UploadUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (*UploadOutput, error)
	// DeleteImage removes the object named by the last path segment of url.
	DeleteImage(ctx context.Context, url string) error
}
