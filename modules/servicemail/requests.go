package servicemail

import (
	"net/url"
	"strings"

	core "github.com/dmitrymomot/servicemail/svc/servicemail"
)

// ComposeRequest is the submitted form. Every route accepts the same fields.
type ComposeRequest struct {
	Email    string `form:"email" json:"email" query:"email"`
	Store    string `form:"store" json:"store" query:"store"`
	Order    string `form:"order" json:"order" query:"order"`
	Name     string `form:"name" json:"name" query:"name"`
	Brand    string `form:"brand" json:"brand" query:"brand"`
	Model    string `form:"model" json:"model" query:"model"`
	Template string `form:"template" json:"template" query:"template"`
}

// Input converts the request for the composer. A blank template selects the
// service exchange; an unknown one is passed through so that composing
// reports it as a template error.
func (r ComposeRequest) Input() core.Input {
	tpl, err := core.ParseTemplate(r.Template)
	if err != nil {
		tpl = core.Template(strings.TrimSpace(r.Template))
	}
	return core.Input{
		Email:        r.Email,
		StoreNumber:  r.Store,
		OrderNumber:  r.Order,
		CustomerName: r.Name,
		Brand:        r.Brand,
		Model:        r.Model,
		Template:     tpl,
	}
}

// Query encodes the request for the countdown and QR code links.
func (r ComposeRequest) Query() string {
	v := url.Values{}
	for k, s := range map[string]string{
		"email":    r.Email,
		"store":    r.Store,
		"order":    r.Order,
		"name":     r.Name,
		"brand":    r.Brand,
		"model":    r.Model,
		"template": r.Template,
	} {
		if s != "" {
			v.Set(k, s)
		}
	}
	return v.Encode()
}

// ValidateRequest carries the field being checked and the current form.
type ValidateRequest struct {
	Field string `path:"field"`
	ComposeRequest
}
