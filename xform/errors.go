package xform

import "errors"

var (
	// ErrInvalidChoice is returned by OneOf when a value is not among the allowed choices.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
