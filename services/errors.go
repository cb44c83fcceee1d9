package services

import "errors"

var (
	ErrMissingCredential = errors.New("GOOGLE_API_KEY is not set")
	ErrUnsupportedImage  = errors.New("unsupported image type")
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyLLMResponse  = errors.New("empty response from model")

	errTrailingJSON = errors.New("unexpected data after JSON value")
)
