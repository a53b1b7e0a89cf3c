package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/servicemail/pkg/logger"
	"github.com/dmitrymomot/servicemail/pkg/requestid"
)

// ErrorPageParams is passed to the error page component.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the page for browser requests. When nil a plain-text
	// body is written.
	ErrorPage func(ErrorPageParams) templ.Component
}

func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Key
	}
	return http.StatusInternalServerError, ErrInternalServerError.Key
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// NewErrorHandler logs err with the request ID and answers in the shape the
// client asked for: JSON for API clients, an error page for browsers. DataStar
// streams may already be open, so they only get the log record.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		status, key := classify(err)
		reqID := requestid.FromContext(r.Context())

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("http"),
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		switch {
		case IsDataStar(r):
			return
		case wantsJSON(r):
			_ = JSONError(status, ErrorDetail{Code: key, Message: http.StatusText(status)}).Render(w, r)
		case cfg.ErrorPage != nil:
			page := cfg.ErrorPage(ErrorPageParams{StatusCode: status, Message: http.StatusText(status), RequestID: reqID})
			if rerr := TemplStatus(status, page).Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "render error page", logger.Error(rerr))
			}
		default:
			http.Error(w, http.StatusText(status), status)
		}
	}
}
