package processor

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid padding request")
	ErrDecode         = errors.New("failed to decode image")
	ErrWrite          = errors.New("failed to write image")
)
