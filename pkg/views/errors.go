package views

import "errors"

var (
	ErrInvalidName      = errors.New("views: invalid template name")
	ErrTemplateNotFound = errors.New("views: template not found")
	ErrParseFailed      = errors.New("views: failed to parse template")
	ErrRenderFailed     = errors.New("views: failed to render template")
)
