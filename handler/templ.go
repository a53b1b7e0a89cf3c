package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	full    templ.Component
	patches []TemplPatch
}

// Render patches each component over SSE for DataStar requests. Plain
// requests get full rendered as an HTML page with the configured status.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	return t.full.Render(r.Context(), w)
}

// Templ renders component as a page, or as a single element patch for
// DataStar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{
		status:  http.StatusOK,
		full:    component,
		patches: []TemplPatch{Patch(component, opts...)},
	}
}

// TemplStatus is Templ with a custom status for plain requests. DataStar
// patches are always sent with 200.
func TemplStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{
		status:  status,
		full:    component,
		patches: []TemplPatch{Patch(component, opts...)},
	}
}

// TemplPartial renders full for plain requests and the patches for DataStar
// requests.
func TemplPartial(status int, full templ.Component, patches ...TemplPatch) Response {
	return templResponse{status: status, full: full, patches: patches}
}
