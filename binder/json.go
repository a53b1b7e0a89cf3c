package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize bounds JSON request bodies.
const DefaultMaxJSONSize = 1 << 20

// JSON decodes an application/json body into v. Unknown fields are rejected.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mt := mediaType(r); mt != mediaJSON {
			return fmt.Errorf("%w: %w: %q", ErrNotApplicable, ErrUnsupportedMediaType, mt)
		}
		if _, err := structValue(v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}

		dec := json.NewDecoder(io.LimitReader(r.Body, DefaultMaxJSONSize))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil
	}
}
