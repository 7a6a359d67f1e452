package util

import "errors"

var (
	ErrPassageNotFound = errors.New("passage not found")
	ErrPromptNotFound  = errors.New("writing prompt not found")
)
