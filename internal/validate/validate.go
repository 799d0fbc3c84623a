// Package validate holds the form-level checks shared by the command
// handlers. Invalid input is rejected before any repository call.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Email reports whether s is a valid email address.
func Email(s string) bool {
	return v.Var(s, "required,email") == nil
}
