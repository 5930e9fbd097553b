// Package order gates cart submission behind validated delivery
// details and renders the order as a WhatsApp message plus wa.me link.
package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrEmptyCart blocks generation before details are even validated.
var ErrEmptyCart = errors.New("cart empty")

// CustomerDetails is the delivery form as entered; form-scoped, never
// persisted.
type CustomerDetails struct {
	Name    string
	Mobile  string
	Address string
}

type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Reason }

// FieldErrors carries every violated field at once so the form can
// highlight all of them in one round trip.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return fmt.Sprintf("invalid details: %s", strings.Join(parts, "; "))
}

// ByField returns the reason for a field, or "".
func (e FieldErrors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Reason
		}
	}
	return ""
}

// Indian mobile numbering: 10 digits, leading 6-9.
var reMobile = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// ValidateDetails checks every field and returns all violations
// together; nil means the details are good to serialize.
func ValidateDetails(d CustomerDetails) FieldErrors {
	var errs FieldErrors

	name := strings.TrimSpace(d.Name)
	switch {
	case utf8.RuneCountInString(name) < 2:
		errs = append(errs, FieldError{"name", "Name must be at least 2 characters"})
	case utf8.RuneCountInString(name) > 100:
		errs = append(errs, FieldError{"name", "Name must be less than 100 characters"})
	}

	if !reMobile.MatchString(strings.TrimSpace(d.Mobile)) {
		errs = append(errs, FieldError{"mobile", "Enter a valid 10-digit mobile number"})
	}

	addr := strings.TrimSpace(d.Address)
	switch {
	case utf8.RuneCountInString(addr) < 10:
		errs = append(errs, FieldError{"address", "Address must be at least 10 characters"})
	case utf8.RuneCountInString(addr) > 300:
		errs = append(errs, FieldError{"address", "Address must be less than 300 characters"})
	}

	return errs
}

// Trimmed returns the details with the whitespace the validator
// ignored stripped, so the message shows what was validated.
func (d CustomerDetails) Trimmed() CustomerDetails {
	return CustomerDetails{
		Name:    strings.TrimSpace(d.Name),
		Mobile:  strings.TrimSpace(d.Mobile),
		Address: strings.TrimSpace(d.Address),
	}
}
