package service

import "errors"

var (
	ErrInvalidMonth = errors.New("month must be a number between 1 and 12")
	ErrInvalidPrice = errors.New("price must be greater than 0")
)
