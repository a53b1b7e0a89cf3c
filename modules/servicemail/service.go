package servicemail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/servicemail/binder"
	"github.com/dmitrymomot/servicemail/handler"
	"github.com/dmitrymomot/servicemail/pkg/cache"
	"github.com/dmitrymomot/servicemail/pkg/clientip"
	"github.com/dmitrymomot/servicemail/pkg/countdown"
	"github.com/dmitrymomot/servicemail/pkg/logger"
	"github.com/dmitrymomot/servicemail/pkg/qrcode"
	"github.com/dmitrymomot/servicemail/pkg/ratelimiter"
	core "github.com/dmitrymomot/servicemail/svc/servicemail"
)

// Service serves the compose form and its endpoints.
type Service struct {
	cfg      Config
	composer *core.Composer
	views    *Views
	log      *slog.Logger
	onError  handler.ErrorHandler[handler.Context]
	qrCache  *cache.LRU[string, []byte]
	limiter  *ratelimiter.Bucket
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithViews replaces the default components. Nil fields keep the defaults.
func WithViews(v *Views) ServiceOption {
	return func(s *Service) {
		s.views = v
	}
}

// WithComposer replaces the composer built from the service logger.
func WithComposer(c *core.Composer) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.composer = c
		}
	}
}

// WithRateLimiter limits the QR code and JSON endpoints per client IP.
func WithRateLimiter(b *ratelimiter.Bucket) ServiceOption {
	return func(s *Service) {
		s.limiter = b
	}
}

func NewService(cfg Config, opts ...ServiceOption) *Service {
	s := &Service{
		cfg: cfg.withDefaults(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.views = s.views.fill()
	if s.composer == nil {
		s.composer = core.NewComposer(core.WithLogger(s.log))
	}
	s.onError = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{ErrorPage: s.views.ErrorPage})
	s.qrCache = cache.NewLRU[string, []byte](s.cfg.QRCodeCacheSize)
	return s
}

// Handle returns the service routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", route[struct{}](s, s.index))
	r.Post("/compose", route[ComposeRequest](s, s.compose, binder.Form()))
	r.Post("/validate/{field}", route[ValidateRequest](s, s.validate, binder.Path(chi.URLParam), binder.Form()))
	r.Get("/countdown", route[ComposeRequest](s, s.countdown, binder.Query()))

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, clientKey, http.HandlerFunc(s.tooManyRequests)))
		}
		r.Post("/api/compose", route[ComposeRequest](s, s.composeAPI, binder.JSON(), binder.Form()))
		r.Get("/qrcode", route[ComposeRequest](s, s.qrcode, binder.Query()))
	})

	return r
}

func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

var errTooManyRequests = handler.NewHTTPError(http.StatusTooManyRequests, "too_many_requests")

func (s *Service) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	s.onError(handler.NewContext(w, r), errTooManyRequests)
}

func route[R any](s *Service, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](s.onError),
	)
}

// failure hands err to the error handler.
type failure struct{ err error }

func (f failure) Render(http.ResponseWriter, *http.Request) error { return f.err }

func (s *Service) index(handler.Context, struct{}) handler.Response {
	return handler.Templ(s.views.Page(FormParams{}))
}

// errorPatches renders every error slot, so a fixed field loses its message.
func (s *Service) errorPatches(fe *core.FieldError) []handler.TemplPatch {
	fields := []core.Field{core.FieldEmail, core.FieldStore, core.FieldOrder, core.FieldTemplate}
	patches := make([]handler.TemplPatch, 0, len(fields))
	for _, f := range fields {
		msg := ""
		if fe != nil && fe.Field == f {
			msg = fe.Message
		}
		patches = append(patches, handler.Patch(s.views.FieldError(f, msg), handler.WithTarget("#"+fieldErrorID(f))))
	}
	return patches
}

func (s *Service) rejected(req ComposeRequest, fe *core.FieldError) handler.Response {
	return handler.TemplPartial(http.StatusUnprocessableEntity,
		s.views.Page(FormParams{Values: req, Err: fe}),
		s.errorPatches(fe)...,
	)
}

func (s *Service) confirmParams(req ComposeRequest, msg core.ComposedMessage) ConfirmParams {
	q := req.Query()
	return ConfirmParams{
		Message:      msg,
		MailtoURI:    msg.MailtoURI(),
		Seconds:      s.cfg.CountdownSeconds,
		CountdownURL: "/countdown?" + q,
		QRCodeURL:    "/qrcode?" + q,
	}
}

func (s *Service) compose(ctx handler.Context, req ComposeRequest) handler.Response {
	res := s.composer.Compose(ctx, req.Input())
	if !res.OK() {
		return s.rejected(req, res.Err)
	}

	params := s.confirmParams(req, *res.Message)
	patches := append(s.errorPatches(nil), handler.Patch(s.views.Confirmation(params)))
	return handler.TemplPartial(http.StatusOK, s.views.ConfirmationPage(params), patches...)
}

// MessageResponse is the JSON body of a composed message.
type MessageResponse struct {
	core.ComposedMessage
	MailtoURI string `json:"mailto_uri"`
}

func (s *Service) composeAPI(ctx handler.Context, req ComposeRequest) handler.Response {
	res := s.composer.Compose(ctx, req.Input())
	if !res.OK() {
		fe := res.Err
		return handler.JSONError(http.StatusUnprocessableEntity, handler.ErrorDetail{
			Code:    string(fe.Kind),
			Message: fe.Message,
			Details: map[string][]string{string(fe.Field): {fe.Message}},
		})
	}
	return handler.JSON(MessageResponse{
		ComposedMessage: *res.Message,
		MailtoURI:       res.Message.MailtoURI(),
	})
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	field, err := core.ParseField(req.Field)
	if err != nil {
		return failure{errors.Join(handler.ErrNotFound, err)}
	}

	msg := ""
	if err := core.ValidateField(field, req.Input()); err != nil {
		fe, ok := core.AsFieldError(err)
		if !ok {
			return failure{err}
		}
		msg = fe.Message
		s.log.DebugContext(ctx, "field rejected", logger.Field(string(field)), slog.String("kind", string(fe.Kind)))
	}

	return handler.Templ(s.views.FieldError(field, msg), handler.WithTarget("#"+fieldErrorID(field)))
}

func (s *Service) countdown(ctx handler.Context, req ComposeRequest) handler.Response {
	res := s.composer.Compose(ctx, req.Input())
	if !res.OK() {
		return s.rejected(req, res.Err)
	}
	uri := res.Message.MailtoURI()
	tpl := logger.Template(string(req.Input().Template))

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(map[string]any{"countdown": s.cfg.CountdownSeconds}); err != nil {
			return err
		}

		task := countdown.Start(stream, s.cfg.CountdownSeconds,
			func(context.Context) error { return stream.Redirect(uri) },
			countdown.WithInterval(s.cfg.CountdownInterval),
			countdown.WithTick(func(remaining int) {
				if err := stream.SendSignals(map[string]any{"countdown": remaining}); err != nil {
					s.log.DebugContext(stream, "send countdown tick", logger.Error(err))
				}
			}),
		)

		outcome, err := task.Wait()
		if errors.Is(err, countdown.ErrCanceled) {
			s.log.DebugContext(stream, "countdown canceled", tpl)
			return nil
		}
		s.log.InfoContext(stream, "countdown finished", tpl, slog.String("outcome", outcome.String()))
		return err
	})
}

type pngResponse []byte

func (p pngResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(p)
	return err
}

func (s *Service) qrcode(ctx handler.Context, req ComposeRequest) handler.Response {
	res := s.composer.Compose(ctx, req.Input())
	if !res.OK() {
		return handler.JSONError(http.StatusUnprocessableEntity, handler.ErrorDetail{
			Code:    string(res.Err.Kind),
			Message: res.Err.Message,
		})
	}

	uri := res.Message.MailtoURI()
	png, err := s.qrCache.GetOrLoad(uri, func() ([]byte, error) {
		return qrcode.Encode(uri, qrcode.WithSize(s.cfg.QRCodeSize))
	})
	if err != nil {
		return failure{errors.Join(handler.ErrInternalServerError, err)}
	}
	return pngResponse(png)
}
