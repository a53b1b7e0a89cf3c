package servicemail

import (
	"fmt"
	"strings"
)

type templateSpec struct {
	label         string
	subjectPrefix string
	paragraph     string
}

var registry = map[Template]templateSpec{
	ServiceExchange: {
		label:         "Service Exchange",
		subjectPrefix: "Geek Squad Service Exchange Authorization",
		paragraph: "This email is to inform you that you are authorized to receive an exchange on your unit " +
			"that you brought in for service. You will need to take a copy of your receipt when you go " +
			"to your local Best Buy store for the exchange.",
	},
	UnitReturn: {
		label:         "Unit Return",
		subjectPrefix: "Geek Squad Unit Return",
		paragraph: "This e-mail is to inform you that your unit has been shipped to your Best Buy store. " +
			"They will be contacting you to set up an appointment to come in and pick up your unit.",
	},
}

const signOff = "If you have any questions please contact your local Best Buy store or track your repair on our website.\n" +
	"Thank you for allowing Geek Squad to serve you!"

// Subject returns the subject line for t.
func Subject(t Template, order string) (string, error) {
	spec, ok := registry[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, t)
	}
	return spec.subjectPrefix + " - Order #" + order, nil
}

// Body returns the message body for t. Values are interpolated verbatim.
// store is not rendered.
func Body(t Template, store, order, name, brand, model string) (string, error) {
	spec, ok := registry[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, t)
	}
	return renderBody(spec.paragraph, order, name, brand, model), nil
}

// ServiceExchangeBody renders the service exchange authorization body.
func ServiceExchangeBody(store, order, name, brand, model string) string {
	body, _ := Body(ServiceExchange, store, order, name, brand, model)
	return body
}

// UnitReturnBody renders the unit return body.
func UnitReturnBody(store, order, name, brand, model string) string {
	body, _ := Body(UnitReturn, store, order, name, brand, model)
	return body
}

func renderBody(paragraph, order, name, brand, model string) string {
	var b strings.Builder
	b.WriteString("Hello ")
	b.WriteString(name)
	b.WriteString(",\n\n")
	b.WriteString(paragraph)
	b.WriteString("\n\n")
	b.WriteString("Service Order: ")
	b.WriteString(order)
	b.WriteString("\nBrand: ")
	b.WriteString(brand)
	b.WriteString("\nModel: ")
	b.WriteString(model)
	b.WriteString("\n\n")
	b.WriteString(signOff)
	return b.String()
}
