// Package validation provides payload and input validation for the client.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for decoded response payloads; the fluent Validator is used for
// caller input and configuration.
//
// # Struct Tag Validation
//
//	type region struct {
//	    ID   *int    `json:"id" validate:"required"`
//	    Name *string `json:"name" validate:"required"`
//	}
//	err := validation.Validate(r)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("date", date).Date("date", date, time.DateOnly)
//	err := v.Validate()
package validation
