package core

import "errors"

// Common errors.
var (
	// ErrAborted is returned when interactive input is interrupted or closed
	// before every answer was collected.
	ErrAborted = errors.New("aborted")
	// ErrTemplateNotFound is returned when the report template does not exist.
	ErrTemplateNotFound = errors.New("template not found")
)
