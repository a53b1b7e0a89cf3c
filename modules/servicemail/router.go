package servicemail

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/servicemail/pkg/clientip"
	"github.com/dmitrymomot/servicemail/pkg/environment"
	"github.com/dmitrymomot/servicemail/pkg/httpserver"
	"github.com/dmitrymomot/servicemail/pkg/logger"
	"github.com/dmitrymomot/servicemail/pkg/requestid"
)

// RouterOptions configures Router.
type RouterOptions struct {
	Service     *Service
	Logger      *slog.Logger
	Environment environment.Environment
}

// Router mounts the service behind the common middleware stack and adds a
// /healthz probe.
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	svc := opts.Service
	if svc == nil {
		svc = NewService(Config{}, WithServiceLogger(log))
	}

	r := chi.NewRouter()
	r.Use(
		clientip.Middleware,
		requestid.Middleware,
		environment.Middleware(opts.Environment),
		accessLog(log),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount("/", svc.Handle())

	return r
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
				logger.Component("http"),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
