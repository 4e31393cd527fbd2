// Package forms holds the create/edit form payloads and their validation.
// Validation failures never reach the store or the network: a form must
// pass all rules before its Build result is submitted.
package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps form field names to the labels used in messages.
var fieldLabels = map[string]string{
	"email":       "Email",
	"username":    "Username",
	"password":    "Password",
	"firstname":   "First name",
	"lastname":    "Last name",
	"city":        "City",
	"street":      "Street",
	"number":      "Number",
	"zipcode":     "Zipcode",
	"lat":         "Latitude",
	"long":        "Longitude",
	"phone":       "Phone",
	"title":       "Title",
	"price":       "Price",
	"description": "Description",
	"image":       "Image URL",
	"category":    "Category",
}

// fieldKey turns a validator namespace like "UserForm.Name.Firstname"
// into the dotted lowercase path the form client uses
// ("name.firstname").
func fieldKey(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:] // drop the struct type name
	}
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.Join(parts, ".")
}

// message renders the user-facing text for one failed rule, the first
// failing rule per field as reported by the validator.
func message(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	label, ok := fieldLabels[name]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return label + " must be at least " + fe.Param() + " characters"
	case "max":
		return label + " must be at most " + fe.Param() + " characters"
	case "url":
		return "Must be a valid URL"
	case "number", "numeric":
		return label + " must be a number"
	default:
		return label + " is invalid"
	}
}

// collect maps a validator error into field -> first failure message.
func collect(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		key := fieldKey(fe.Namespace())
		if _, seen := out[key]; !seen {
			out[key] = message(fe)
		}
	}
	return out
}
