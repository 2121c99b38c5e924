package entities

import "errors"

var (
	ErrNotFound        = errors.New("currency not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyRates      = errors.New("rates shall not be empty")
)
