package binder

import "errors"

var (
	// ErrNotApplicable marks a binder that does not handle the request's
	// content type.
	ErrNotApplicable        = errors.New("binder: not applicable")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrInvalidForm          = errors.New("binder: invalid form data")
	ErrInvalidQuery         = errors.New("binder: invalid query parameter")
	ErrInvalidJSON          = errors.New("binder: invalid JSON")
	ErrInvalidPath          = errors.New("binder: invalid path parameter")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer to struct")
)
