package servicemail

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/servicemail/handler"
	core "github.com/dmitrymomot/servicemail/svc/servicemail"
)

// FormParams renders the form with the submitted values and the error, if any.
type FormParams struct {
	Values ComposeRequest
	Err    *core.FieldError
}

func (p FormParams) errorFor(f core.Field) string {
	if p.Err != nil && p.Err.Field == f {
		return p.Err.Message
	}
	return ""
}

// ConfirmParams renders the countdown before the mail client opens.
type ConfirmParams struct {
	Message      core.ComposedMessage
	MailtoURI    string
	Seconds      int
	CountdownURL string
	QRCodeURL    string
}

// Views is the set of components the service renders. Zero fields fall back
// to DefaultViews.
type Views struct {
	Page             func(FormParams) templ.Component
	Form             func(FormParams) templ.Component
	FieldError       func(field core.Field, message string) templ.Component
	ConfirmationPage func(ConfirmParams) templ.Component
	Confirmation     func(ConfirmParams) templ.Component
	ErrorPage        func(handler.ErrorPageParams) templ.Component
}

func DefaultViews() *Views {
	return &Views{
		Page:             pageView,
		Form:             formView,
		FieldError:       fieldErrorView,
		ConfirmationPage: confirmationPageView,
		Confirmation:     confirmationView,
		ErrorPage:        errorPageView,
	}
}

func (v *Views) fill() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.Page == nil {
		out.Page = d.Page
	}
	if out.Form == nil {
		out.Form = d.Form
	}
	if out.FieldError == nil {
		out.FieldError = d.FieldError
	}
	if out.ConfirmationPage == nil {
		out.ConfirmationPage = d.ConfirmationPage
	}
	if out.Confirmation == nil {
		out.Confirmation = d.Confirmation
	}
	if out.ErrorPage == nil {
		out.ErrorPage = d.ErrorPage
	}
	return &out
}

const datastarScript = `<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>`

var esc = templ.EscapeString

func fieldErrorID(f core.Field) string {
	return string(f) + "-error"
}

func layout(title string, head string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title>%s%s</head><body><main>`,
			esc(title), head, datastarScript,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div id="confirmation"></div></main></body></html>`)
		return err
	})
}

func pageView(p FormParams) templ.Component {
	return layout("Geek Squad Service Email", "", formView(p))
}

func fieldErrorView(field core.Field, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="%s" class="field-error" role="alert">%s</p>`,
			fieldErrorID(field), esc(message))
		return err
	})
}

type inputSpec struct {
	name, label, kind, placeholder, value string
	validated                             bool
}

func formView(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		v := p.Values
		inputs := []inputSpec{
			{"email", "Customer email", "email", "customer@example.com", v.Email, true},
			{"store", "Store number", "text", "630", v.Store, true},
			{"order", "Service order", "text", "0630-250814-56874", v.Order, true},
			{"name", "Customer name", "text", "", v.Name, false},
			{"brand", "Brand", "text", "", v.Brand, false},
			{"model", "Model", "text", "", v.Model, false},
		}

		if _, err := io.WriteString(w,
			`<form id="compose-form" method="post" action="/compose" `+
				`data-on:submit="@post('/compose', {contentType: 'form'})">`); err != nil {
			return err
		}

		for _, in := range inputs {
			if _, err := fmt.Fprintf(w, `<label for="%s">%s</label><input id="%s" name="%s" type="%s" value="%s" placeholder="%s"`,
				in.name, esc(in.label), in.name, in.name, in.kind, esc(in.value), esc(in.placeholder)); err != nil {
				return err
			}
			if in.validated {
				if _, err := fmt.Fprintf(w, ` data-on:blur="@post('/validate/%s', {contentType: 'form'})"`, in.name); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `>`); err != nil {
				return err
			}
			if in.validated {
				field := core.Field(in.name)
				if err := fieldErrorView(field, p.errorFor(field)).Render(ctx, w); err != nil {
					return err
				}
			}
		}

		if err := fieldErrorView(core.FieldTemplate, p.errorFor(core.FieldTemplate)).Render(ctx, w); err != nil {
			return err
		}
		for _, t := range core.Templates() {
			if _, err := fmt.Fprintf(w, `<button type="submit" name="template" value="%s">%s</button>`,
				esc(string(t)), esc(t.Label())); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</form>`)
		return err
	})
}

func messagePreview(w io.Writer, m core.ComposedMessage) error {
	_, err := fmt.Fprintf(w,
		`<dl class="preview"><dt>To</dt><dd>%s</dd><dt>CC</dt><dd>%s</dd><dt>Subject</dt><dd>%s</dd></dl><pre class="body">%s</pre>`,
		esc(m.To), esc(m.CC), esc(m.Subject), esc(m.Body))
	return err
}

func confirmationView(p ConfirmParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div id="confirmation" class="modal" data-signals:countdown="%d" data-init="@get('%s')">`+
				`<p>Opening your mail client in <span data-text="$countdown">%d</span> seconds.</p>`,
			p.Seconds, esc(p.CountdownURL), p.Seconds); err != nil {
			return err
		}
		if err := messagePreview(w, p.Message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<img src="%s" alt="Scan to open on a phone" width="160" height="160">`+
				`<a class="button" href="%s">Open now</a><a class="button" href="/">Cancel</a></div>`,
			esc(p.QRCodeURL), esc(p.MailtoURI))
		return err
	})
}

func confirmationPageView(p ConfirmParams) templ.Component {
	refresh := `<meta http-equiv="refresh" content="` + strconv.Itoa(p.Seconds) + `;url=` + esc(p.MailtoURI) + `">`
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="confirm"><p>Opening your mail client in %d seconds.</p>`, p.Seconds); err != nil {
			return err
		}
		if err := messagePreview(w, p.Message); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<img src="%s" alt="Scan to open on a phone" width="160" height="160">`+
				`<a class="button" href="%s">Open now</a><a class="button" href="/">Cancel</a></section>`,
			esc(p.QRCodeURL), esc(p.MailtoURI))
		return err
	})
	return layout("Confirm service email", refresh, body)
}

func errorPageView(p handler.ErrorPageParams) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error"><h1>%d</h1><p>%s</p><p class="request-id">%s</p><a href="/">Back to the form</a></section>`,
			p.StatusCode, esc(p.Message), esc(p.RequestID))
		return err
	})
	return layout(p.Message, "", body)
}
