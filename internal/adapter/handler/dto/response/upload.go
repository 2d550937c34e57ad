package response

import (
	"github.com/marcos-nsantos/image-gateway/internal/usecase/sign"
	"github.com/marcos-nsantos/image-gateway/internal/usecase/upload"
)

type UploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func UploadResultToResponse(result *upload.UploadResult) UploadResponse {
	return UploadResponse{
		Key: result.Key,
		URL: result.URL,
	}
}

type SignResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

func SignResultToResponse(result *sign.SignResult) SignResponse {
	return SignResponse{
		Key:       result.Key,
		URL:       result.URL,
		ExpiresIn: result.ExpiresIn,
	}
}
