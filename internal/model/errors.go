package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrMalformedOutput = errors.New("malformed completion output")
)
