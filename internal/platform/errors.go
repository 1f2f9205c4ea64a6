package platform

import (
	"errors"
)

var (
	// ErrBatchNotFound is returned when import batch with provided ID doesn't exist.
	ErrBatchNotFound = errors.New("import batch not found")
	// ErrProductNotFound is returned when product with provided ID doesn't exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrTemplateNotFound is returned when there is no custom prompt template for content slot.
	ErrTemplateNotFound = errors.New("prompt template not found")
	// ErrInvalidTransition is returned when status change is not allowed by lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)
