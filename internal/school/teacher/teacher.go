package teacher

import (
	"strings"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/validate"
)

// Profile is the teacher-side domain extension of a user account.
// Exactly one profile may exist per user.
type Profile struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	FullName  string     `json:"full_name"`
	HireDate  time.Time  `json:"hire_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Courses is populated only by explicit with-details loads.
	Courses []CourseSummary `json:"courses,omitempty"`
}

// CourseSummary is the read-side view of a course taught by this teacher.
type CourseSummary struct {
	CourseID  int64     `json:"course_id"`
	Title     string    `json:"title"`
	StartDate time.Time `json:"start_date"`
}

// Profile constraints.
const (
	FullNameMinLen = 2
	FullNameMaxLen = 200
	// MaxTenureYears bounds how far in the past a hire date may lie.
	MaxTenureYears = 50
)

// Global field names for validation
const (
	FieldUserID   = "user_id"
	FieldFullName = "full_name"
	FieldHireDate = "hire_date"
)

// NewProfile builds a valid teacher profile for an existing user.
//
// The hire date must not be in the future and at most 50 years ago; it is
// immutable after creation. Today is a valid hire date.
func NewProfile(userID int64, fullName string, hireDate time.Time) (*Profile, error) {
	trimmedName := strings.TrimSpace(fullName)
	oldestAllowed := time.Now().AddDate(-MaxTenureYears, 0, 0)

	validator := &validate.Validator{}
	validator.Custom(FieldUserID, userID <= 0, "Must reference an existing user").
		Required(FieldFullName, trimmedName).
		MinLen(FieldFullName, trimmedName, FullNameMinLen).
		MaxLen(FieldFullName, trimmedName, FullNameMaxLen).
		NotFuture(FieldHireDate, hireDate).
		Custom(FieldHireDate, hireDate.Before(oldestAllowed), "Must be at most 50 years in the past")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Profile{
		UserID:   userID,
		FullName: trimmedName,
		HireDate: hireDate,
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
