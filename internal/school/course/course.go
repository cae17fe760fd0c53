package course

import (
	"strings"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/validate"
)

// Course represents a taught unit owned by exactly one teacher profile.
type Course struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	TeacherProfileID int64      `json:"teacher_profile_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`

	// Enrollments is populated only by explicit with-details loads.
	Enrollments []EnrollmentSummary `json:"enrollments,omitempty"`
}

// EnrollmentSummary is the read-side view of one enrollment in this course.
type EnrollmentSummary struct {
	EnrollmentID int64     `json:"enrollment_id"`
	StudentID    int64     `json:"student_id"`
	StudentName  string    `json:"student_name"`
	EnrollDate   time.Time `json:"enroll_date"`
	Grade        *float64  `json:"grade,omitempty"`
}

// Course constraints.
const (
	TitleMinLen       = 2
	TitleMaxLen       = 200
	DescriptionMaxLen = 2000
)

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStartDate   = "start_date"
	FieldTeacherID   = "teacher_profile_id"
)

// NewCourse builds a valid course assigned to a teacher profile.
// Teacher existence is the service's responsibility; the factory only
// checks identifier shape.
func NewCourse(title string, description *string, startDate time.Time, teacherProfileID int64) (*Course, error) {
	trimmedTitle := strings.TrimSpace(title)
	trimmedDescription := trimDescription(description)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, trimmedTitle).
		MinLen(FieldTitle, trimmedTitle, TitleMinLen).
		MaxLen(FieldTitle, trimmedTitle, TitleMaxLen).
		Custom(FieldStartDate, startDate.IsZero(), "This field is required").
		Custom(FieldTeacherID, teacherProfileID <= 0, "Must reference an existing teacher profile")

	if trimmedDescription != nil {
		validator.MaxLen(FieldDescription, *trimmedDescription, DescriptionMaxLen)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Course{
		Title:            trimmedTitle,
		Description:      trimmedDescription,
		StartDate:        startDate,
		TeacherProfileID: teacherProfileID,
	}, nil
}

// UpdateTitle replaces the course title.
func (course *Course) UpdateTitle(title string) error {
	trimmedTitle := strings.TrimSpace(title)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, trimmedTitle).
		MinLen(FieldTitle, trimmedTitle, TitleMinLen).
		MaxLen(FieldTitle, trimmedTitle, TitleMaxLen)

	if err := validator.Err(); err != nil {
		return err
	}

	course.Title = trimmedTitle
	course.touch()
	return nil
}

// UpdateDescription replaces the description; nil clears it.
func (course *Course) UpdateDescription(description *string) error {
	trimmedDescription := trimDescription(description)

	if trimmedDescription != nil {
		validator := &validate.Validator{}
		if err := validator.MaxLen(FieldDescription, *trimmedDescription, DescriptionMaxLen).Err(); err != nil {
			return err
		}
	}

	course.Description = trimmedDescription
	course.touch()
	return nil
}

// UpdateStartDate replaces the scheduled start.
func (course *Course) UpdateStartDate(startDate time.Time) error {
	if startDate.IsZero() {
		return validate.RequiredError(FieldStartDate, "This field is required")
	}

	course.StartDate = startDate
	course.touch()
	return nil
}

// AssignTeacher re-assigns the owning teacher profile. Shape check only;
// existence is verified by the service against the teacher repository.
func (course *Course) AssignTeacher(teacherProfileID int64) error {
	if teacherProfileID <= 0 {
		return validate.RequiredError(FieldTeacherID, "Must reference an existing teacher profile")
	}

	course.TeacherProfileID = teacherProfileID
	course.touch()
	return nil
}

func (course *Course) touch() {
	now := time.Now()
	course.UpdatedAt = &now
}

// trimDescription normalizes an optional description; blank becomes nil.
func trimDescription(description *string) *string {
	if description == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
