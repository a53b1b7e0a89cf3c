// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by binders,
// and returns a Response that knows how to render itself. Wrap turns it into
// an http.HandlerFunc:
//
//	type composeRequest struct {
//	    Email string `form:"email"`
//	}
//
//	r.Post("/compose", handler.Wrap(
//	    handler.HandlerFunc[handler.Context, composeRequest](h.compose),
//	    handler.WithBinders[handler.Context, composeRequest](binder.Form()),
//	    handler.WithErrorHandler[handler.Context, composeRequest](errHandler),
//	))
//
// Responses adapt to DataStar: Templ and Redirect send server-sent events when
// the request came from a DataStar action and plain HTML or HTTP redirects
// otherwise. SSE runs a long-lived stream handler.
package handler
