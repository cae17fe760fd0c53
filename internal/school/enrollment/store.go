package enrollment

import "context"

// Repository defines the data access contract for enrollments.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Enrollment, int, error)
	ListByStudent(context context.Context, studentProfileID int64) ([]*Enrollment, error)
	ListByCourse(context context.Context, courseID int64) ([]*Enrollment, error)
	FindByID(context context.Context, id int64) (*Enrollment, error)
	FindWithDetails(context context.Context, id int64) (*Details, error)
	Create(context context.Context, enrollment *Enrollment) error
	UpdateGrade(context context.Context, id int64, grade *float64) error
	Delete(context context.Context, id int64) error
	Exists(context context.Context, id int64) (bool, error)
	IsEnrolled(context context.Context, studentProfileID, courseID int64) (bool, error)
}

// StudentDirectory is the narrow view of the student repository the
// enrollment service needs for precondition checks.
type StudentDirectory interface {
	Exists(context context.Context, id int64) (bool, error)
}

// CourseDirectory is the equivalent view of the course repository.
type CourseDirectory interface {
	Exists(context context.Context, id int64) (bool, error)
}
