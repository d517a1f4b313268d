package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidTime  = errors.New("invalid clock time")
	ErrInvalidDate  = errors.New("invalid date")
)
