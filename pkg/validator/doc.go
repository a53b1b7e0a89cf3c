// Package validator provides small, composable validation rules for raw form
// input.
//
// Every exported rule constructor returns a Rule: a Check func paired with a
// ValidationError describing the failure. Rules carry a machine-readable Code,
// a human message and translation metadata, so callers can remap them to their
// own error taxonomy with WithCode and WithMessage.
//
// Two evaluation strategies are available:
//
//   - Apply runs every rule and aggregates failures into ValidationErrors.
//   - First stops at the first failing rule and returns it as a single
//     *ValidationError. Form handlers that surface one error per attempt use it.
//
// # Usage
//
//	err := validator.First(
//	    validator.Required("store", raw),
//	    validator.Digits("store", raw),
//	    validator.LengthIn("store", raw, 3, 4),
//	)
//	if verr := validator.ExtractValidationError(err); verr != nil {
//	    // verr.Field, verr.Code, verr.Message
//	}
//
// The package is stateless and goroutine-safe. Patterns passed to Matches are
// compiled by the caller so hot paths never recompile a regexp.
package validator
