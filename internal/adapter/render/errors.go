package render

import "errors"

var (
	// ErrRender wraps every template load or execution failure.
	ErrRender           = errors.New("render failed")
	ErrTemplateNotFound = errors.New("template not found")
)
