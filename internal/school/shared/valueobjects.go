// Package shared holds value objects common to the school domain.
//
// Value objects are immutable once constructed. A constructed value is
// always valid, so the rest of the domain never re-checks these rules.
package shared

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
)

// # Email

// Email is a validated email address. The stored value is the trimmed
// input, exactly as given otherwise; casing policy belongs to the caller.
type Email struct {
	value string
}

// NewEmail trims the raw input and verifies basic shape.
func NewEmail(raw string) (Email, error) {
	trimmedValue := strings.TrimSpace(raw)

	if trimmedValue == "" {
		return Email{}, apperr.ValidationError("Email is required")
	}

	if !strings.Contains(trimmedValue, "@") {
		return Email{}, apperr.ValidationError(fmt.Sprintf("%q is not a valid email address", raw))
	}

	return Email{value: trimmedValue}, nil
}

// String returns the stored address.
func (e Email) String() string {
	return e.value
}

// Equals compares two emails by exact stored value.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// MarshalJSON renders the email as a plain JSON string.
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

// UnmarshalJSON parses and validates an email from a JSON string.
func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewEmail(raw)
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}

// # Grade

// Grade bounds are inclusive.
const (
	GradeMin = 0.0
	GradeMax = 100.0
)

// Grade is a numeric score on the [0, 100] scale. Values are stored exactly
// as given, without rounding.
type Grade struct {
	value float64
}

// NewGrade validates that the value is within the allowed scale.
func NewGrade(value float64) (Grade, error) {
	if value < GradeMin || value > GradeMax {
		return Grade{}, apperr.OutOfRange(fmt.Sprintf("Grade %g is outside the range [%g, %g]", value, GradeMin, GradeMax))
	}

	return Grade{value: value}, nil
}

// Value returns the raw score.
func (g Grade) Value() float64 {
	return g.value
}

// Equals compares two grades by exact value.
func (g Grade) Equals(other Grade) bool {
	return g.value == other.value
}

// MarshalJSON renders the grade as a plain JSON number.
func (g Grade) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.value)
}

// UnmarshalJSON parses and validates a grade from a JSON number.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var raw float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewGrade(raw)
	if err != nil {
		return err
	}

	*g = parsed
	return nil
}
