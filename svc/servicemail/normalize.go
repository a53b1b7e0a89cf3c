package servicemail

import "github.com/dmitrymomot/servicemail/pkg/sanitizer"

// CapitalizeName title-cases each space-separated word of a customer name.
// Blank input is returned as-is.
func CapitalizeName(name string) string {
	return sanitizer.CapitalizeWords(name)
}

// Normalize trims every field and capitalizes the customer name.
func Normalize(in Input) Input {
	sanitizer.InPlace([]*string{
		&in.Email,
		&in.StoreNumber,
		&in.OrderNumber,
		&in.CustomerName,
		&in.Brand,
		&in.Model,
	}, sanitizer.Trim)
	in.CustomerName = CapitalizeName(in.CustomerName)
	return in
}
