package enrollment

import (
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/validate"
	"github.com/minhvu-dev/eduka/internal/school/shared"
)

// Enrollment links one student profile to one course. The pair is unique;
// a student enrolls in a given course at most once.
type Enrollment struct {
	ID               int64         `json:"id"`
	StudentProfileID int64         `json:"student_profile_id"`
	CourseID         int64         `json:"course_id"`
	EnrollDate       time.Time     `json:"enroll_date"`
	Grade            *shared.Grade `json:"grade,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        *time.Time    `json:"updated_at,omitempty"`
}

// Details is the read-side expansion of an enrollment with the names of
// both ends of the link.
type Details struct {
	Enrollment

	StudentName string `json:"student_name"`
	CourseTitle string `json:"course_title"`
}

// Global field names for validation
const (
	FieldStudentID  = "student_profile_id"
	FieldCourseID   = "course_id"
	FieldEnrollDate = "enroll_date"
)

// NewEnrollment builds an ungraded enrollment. A zero enrollDate defaults
// to now; future dates are rejected. Existence of both ends is the
// service's responsibility.
func NewEnrollment(studentProfileID, courseID int64, enrollDate time.Time) (*Enrollment, error) {
	if enrollDate.IsZero() {
		enrollDate = time.Now()
	}

	validator := &validate.Validator{}
	validator.Custom(FieldStudentID, studentProfileID <= 0, "Must reference an existing student profile").
		Custom(FieldCourseID, courseID <= 0, "Must reference an existing course").
		NotFuture(FieldEnrollDate, enrollDate)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Enrollment{
		StudentProfileID: studentProfileID,
		CourseID:         courseID,
		EnrollDate:       enrollDate,
	}, nil
}

// AssignGrade sets or replaces the grade. Out-of-scale values are rejected
// by the value object.
func (enrollment *Enrollment) AssignGrade(value float64) error {
	grade, err := shared.NewGrade(value)
	if err != nil {
		return err
	}

	enrollment.Grade = &grade
	enrollment.touch()
	return nil
}

// RemoveGrade reverts the enrollment to ungraded.
func (enrollment *Enrollment) RemoveGrade() {
	enrollment.Grade = nil
	enrollment.touch()
}

func (enrollment *Enrollment) touch() {
	now := time.Now()
	enrollment.UpdatedAt = &now
}
