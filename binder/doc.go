// Package binder populates request structs from HTTP requests.
//
// Each binder reads one source, selected by struct tag:
//
//	type composeRequest struct {
//	    Email    string `form:"email" json:"email"`
//	    Store    string `form:"store" json:"store"`
//	    Template string `query:"template" form:"template" json:"template"`
//	    Field    string `path:"field"`
//	}
//
// Form and JSON only apply to requests with their content type; for any other
// content type they return an error wrapping ErrNotApplicable so that
// handler.Wrap can try the next binder. Fields without a tag bind under their
// lower-cased name and `-` skips a field. Supported field types are strings,
// integers, unsigned integers, floats, bools, pointers to those and slices of
// those.
package binder
