package domain

import "errors"

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrUnprocessableImage   = errors.New("unprocessable image")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrPayloadTooLarge      = errors.New("payload too large")
)
