package httpapi

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrFinderDisabled       = errors.New("no deliverability checker configured")
)
