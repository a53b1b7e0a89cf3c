package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext sends DataStar events over an open SSE connection. Its
// Done channel closes when the client disconnects.
type StreamContext interface {
	Context
	SendComponent(component templ.Component, opts ...TemplOption) error
	SendSignals(signals map[string]any) error
	Redirect(url string) error
}

// SSEHandler runs for the lifetime of the stream.
type SSEHandler func(stream StreamContext) error

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrStreamNotStarted
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrStreamNotStarted
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

func (c *streamContext) Redirect(url string) error {
	if c.sse == nil {
		return ErrStreamNotStarted
	}
	return c.sse.Redirect(url)
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return errors.Join(ErrBadRequest, ErrNotDataStar)
	}
	return s.handler(&streamContext{
		Context: NewContext(w, r),
		sse:     datastar.NewSSE(w, r),
	})
}

// SSE opens a DataStar event stream and runs h. Non-DataStar requests fail
// with ErrBadRequest.
func SSE(h SSEHandler) Response {
	return sseResponse{handler: h}
}
