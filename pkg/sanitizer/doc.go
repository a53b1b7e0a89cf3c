// Package sanitizer provides pure string transformations used to normalise raw
// form input before it is validated.
//
// Transformations are plain func(string) string values so they can be chained
// with Apply, stored as reusable pipelines with Compose, or run over several
// fields at once with InPlace.
//
//	name := sanitizer.Apply(raw, sanitizer.Trim, sanitizer.CapitalizeWords)
//	sanitizer.InPlace([]*string{&in.Email, &in.Store}, sanitizer.Trim)
package sanitizer
