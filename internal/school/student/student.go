package student

import (
	"strings"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/validate"
)

// Profile is the student-side domain extension of a user account.
// Exactly one profile may exist per user.
type Profile struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	FullName  string     `json:"full_name"`
	BirthDate time.Time  `json:"birth_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Enrollments is populated only by explicit with-details loads.
	Enrollments []EnrollmentSummary `json:"enrollments,omitempty"`
}

// EnrollmentSummary is the read-side view of one of the student's enrollments.
type EnrollmentSummary struct {
	EnrollmentID int64     `json:"enrollment_id"`
	CourseID     int64     `json:"course_id"`
	CourseTitle  string    `json:"course_title"`
	EnrollDate   time.Time `json:"enroll_date"`
	Grade        *float64  `json:"grade,omitempty"`
}

// Profile constraints.
const (
	FullNameMinLen = 2
	FullNameMaxLen = 200
	// MaxAgeYears bounds how far in the past a birth date may lie.
	MaxAgeYears = 120
)

// Global field names for validation
const (
	FieldUserID    = "user_id"
	FieldFullName  = "full_name"
	FieldBirthDate = "birth_date"
)

// NewProfile builds a valid student profile for an existing user.
//
// The birth date must be strictly in the past and at most 120 years ago;
// it is immutable after creation.
func NewProfile(userID int64, fullName string, birthDate time.Time) (*Profile, error) {
	trimmedName := strings.TrimSpace(fullName)
	oldestAllowed := time.Now().AddDate(-MaxAgeYears, 0, 0)

	validator := &validate.Validator{}
	validator.Custom(FieldUserID, userID <= 0, "Must reference an existing user").
		Required(FieldFullName, trimmedName).
		MinLen(FieldFullName, trimmedName, FullNameMinLen).
		MaxLen(FieldFullName, trimmedName, FullNameMaxLen).
		PastDate(FieldBirthDate, birthDate).
		Custom(FieldBirthDate, birthDate.Before(oldestAllowed), "Must be at most 120 years in the past")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Profile{
		UserID:    userID,
		FullName:  trimmedName,
		BirthDate: birthDate,
	}, nil
}

// UpdateFullName is the only permitted mutation on a profile.
func (profile *Profile) UpdateFullName(fullName string) error {
	trimmedName := strings.TrimSpace(fullName)

	validator := &validate.Validator{}
	validator.Required(FieldFullName, trimmedName).
		MinLen(FieldFullName, trimmedName, FullNameMinLen).
		MaxLen(FieldFullName, trimmedName, FullNameMaxLen)

	if err := validator.Err(); err != nil {
		return err
	}

	profile.FullName = trimmedName
	now := time.Now()
	profile.UpdatedAt = &now
	return nil
}
