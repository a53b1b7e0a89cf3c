package binder

import (
	"fmt"
	"net/http"
)

const (
	mediaForm      = "application/x-www-form-urlencoded"
	mediaMultipart = "multipart/form-data"
	mediaJSON      = "application/json"

	// DefaultMaxMemory bounds multipart parsing held in memory.
	DefaultMaxMemory = 10 << 20
)

// Form binds `form` tagged fields from a urlencoded or multipart body.
// Query parameters are not read.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch mt := mediaType(r); mt {
		case mediaForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		case mediaMultipart:
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
		default:
			return fmt.Errorf("%w: %w: %q", ErrNotApplicable, ErrUnsupportedMediaType, mt)
		}

		return bindValues(v, "form", func(name string) []string {
			return r.PostForm[name]
		}, ErrInvalidForm)
	}
}
