package servicemail

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/servicemail/pkg/mailto"
)

// Template selects the subject and body wording.
type Template string

const (
	ServiceExchange Template = "service-exchange"
	UnitReturn      Template = "unit-return"
)

// Templates lists the supported templates in display order.
func Templates() []Template {
	return []Template{ServiceExchange, UnitReturn}
}

// ParseTemplate maps a selector string to a Template. An empty selector means
// ServiceExchange.
func ParseTemplate(s string) (Template, error) {
	switch t := Template(strings.TrimSpace(strings.ToLower(s))); t {
	case "":
		return ServiceExchange, nil
	case ServiceExchange, UnitReturn:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
	}
}

func (t Template) Valid() bool {
	_, ok := registry[t]
	return ok
}

// Label is the human-readable button caption.
func (t Template) Label() string {
	if spec, ok := registry[t]; ok {
		return spec.label
	}
	return string(t)
}

// Field names a user-facing input that can carry an error.
type Field string

const (
	FieldEmail    Field = "email"
	FieldStore    Field = "store"
	FieldOrder    Field = "order"
	FieldTemplate Field = "template"
)

// ParseField maps a field identifier to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldEmail, FieldStore, FieldOrder:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// ContactInfo identifies the customer.
type ContactInfo struct {
	Email        string
	CustomerName string
}

// ProductInfo describes the serviced unit. Free text, never validated.
type ProductInfo struct {
	Brand string
	Model string
}

// Input is one submission attempt as typed by the user.
type Input struct {
	Email        string
	StoreNumber  string
	OrderNumber  string
	CustomerName string
	Brand        string
	Model        string
	Template     Template
}

func (in Input) Contact() ContactInfo {
	return ContactInfo{Email: in.Email, CustomerName: in.CustomerName}
}

func (in Input) Product() ProductInfo {
	return ProductInfo{Brand: in.Brand, Model: in.Model}
}

// ComposedMessage is the final outgoing email.
type ComposedMessage struct {
	To      string `json:"to"`
	CC      string `json:"cc"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MailtoURI encodes the message as a mailto: link.
func (m ComposedMessage) MailtoURI() string {
	return mailto.Build(m.To, m.CC, m.Subject, m.Body)
}
