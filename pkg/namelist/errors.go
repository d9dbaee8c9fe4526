package namelist

import "errors"

var (
	ErrUnknownFormat = errors.New("namelist: unknown format")
	ErrDecode        = errors.New("namelist: failed to decode names")
)
