package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servicemail/binder"
	"github.com/dmitrymomot/servicemail/handler"
)

type greetRequest struct {
	Name string `form:"name"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, greetRequest](func(ctx handler.Context, req greetRequest) handler.Response {
			return handler.Templ(text("Hello " + req.Name))
		}),
		handler.WithBinders[handler.Context, greetRequest](binder.Form()),
	)

	rec := httptest.NewRecorder()
	h(rec, formRequest(url.Values{"name": {"Jane"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Hello Jane", rec.Body.String())
}

func TestWrap_DecoratorsOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mark := func(name string) handler.Decorator[handler.Context, greetRequest] {
		return func(next handler.HandlerFunc[handler.Context, greetRequest]) handler.HandlerFunc[handler.Context, greetRequest] {
			return func(ctx handler.Context, req greetRequest) handler.Response {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, greetRequest](func(handler.Context, greetRequest) handler.Response {
			calls = append(calls, "handler")
			return handler.JSON("ok")
		}),
		handler.WithDecorators(mark("outer"), mark("inner")),
	)

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestWrap_Errors(t *testing.T) {
	t.Parallel()

	t.Run("bind error is bad request", func(t *testing.T) {
		t.Parallel()

		type countRequest struct {
			Count int `form:"count"`
		}
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, countRequest](func(handler.Context, countRequest) handler.Response {
				return handler.JSON("unreachable")
			}),
			handler.WithBinders[handler.Context, countRequest](binder.Form()),
		)

		rec := httptest.NewRecorder()
		h(rec, formRequest(url.Values{"count": {"many"}}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "unreachable")
	})

	t.Run("inapplicable binder is skipped", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, greetRequest](func(_ handler.Context, req greetRequest) handler.Response {
				return handler.JSON(req.Name)
			}),
			handler.WithBinders[handler.Context, greetRequest](binder.Form(), binder.Query()),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=Jo", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":"Jo"}`, rec.Body.String())
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, greetRequest](func(handler.Context, greetRequest) handler.Response { return nil }),
			handler.WithErrorHandler[handler.Context, greetRequest](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON(map[string]string{"to": "a@b.c"}).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"to":"a@b.c"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	resp := handler.JSONError(http.StatusUnprocessableEntity, handler.ErrorDetail{
		Code:    "bad_length",
		Message: "Store number must be 3 or 4 digits.",
		Details: map[string][]string{"store": {"Store number must be 3 or 4 digits."}},
	})
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "bad_length", body.Error.Code)
	assert.Nil(t, body.Data)
}

func TestTempl_DataStarPatch(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(handler.DataStarRequestHeader, "true")
	rec := httptest.NewRecorder()

	err := handler.TemplStatus(http.StatusUnprocessableEntity, text(`<p id="store-error">bad</p>`),
		handler.WithTarget("#store-error"),
	).Render(rec, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
	assert.Contains(t, rec.Body.String(), "#store-error")
}

func TestTemplPartial_PlainRequest(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := handler.TemplPartial(http.StatusUnprocessableEntity, text("page"),
		handler.Patch(text("fragment")),
	).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "page", rec.Body.String())
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/").Render(rec, httptest.NewRequest(http.MethodGet, "/x", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(handler.DataStarRequestHeader, "true")
	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("mailto:a@b.c").Render(rec, req))
	assert.Contains(t, rec.Body.String(), "mailto:a@b.c")
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("requires datastar", func(t *testing.T) {
		t.Parallel()

		err := handler.SSE(func(handler.StreamContext) error { return nil }).
			Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, handler.ErrNotDataStar)
		assert.Equal(t, http.StatusBadRequest, handler.StatusCode(err))
	})

	t.Run("sends signals", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
		rec := httptest.NewRecorder()

		err := handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendSignals(map[string]any{"countdown": 3})
		}).Render(rec, req)
		require.NoError(t, err)

		assert.Contains(t, rec.Body.String(), "datastar-patch-signals")
		assert.Contains(t, rec.Body.String(), `"countdown":3`)
	})
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	eh := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return text(p.Message)
		},
	})

	t.Run("browser gets page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", rec.Body.String())
	})

	t.Run("api gets json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/compose", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		eh(handler.NewContext(rec, req), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"internal_server_error","message":"Internal Server Error"}}`, rec.Body.String())
	})

	assert.Contains(t, logs.String(), "request failed")
}
