package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the template source is missing or unreadable.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrPathTraversal indicates a template path would escape the destination directory.
	ErrPathTraversal = errors.New("template path escapes destination")

	// ErrMaterialize indicates the template could not be copied to the destination.
	ErrMaterialize = errors.New("template materialization failed")
)
