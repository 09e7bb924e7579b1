package savefile

import "errors"

// Package errors.
var (
	ErrTruncatedHeader   = errors.New("truncated save header")
	ErrUnknownMarker     = errors.New("unknown save type marker")
	ErrInvalidName       = errors.New("save name is not valid text")
	ErrPayloadTooLarge   = errors.New("payload does not fit the 32-bit size field")
	ErrAlreadyCompressed = errors.New("save is already compressed")
	ErrNotCompressed     = errors.New("save is not compressed")
)
