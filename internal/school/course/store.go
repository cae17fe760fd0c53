package course

import "context"

// Repository defines the data access contract for courses.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Course, int, error)
	ListByTeacher(context context.Context, teacherProfileID int64, limit, offset int) ([]*Course, int, error)
	FindByID(context context.Context, id int64) (*Course, error)
	FindWithDetails(context context.Context, id int64) (*Course, error)
	Create(context context.Context, course *Course) error
	Update(context context.Context, course *Course) error
	Delete(context context.Context, id int64) error
	Exists(context context.Context, id int64) (bool, error)
	CountEnrollments(context context.Context, id int64) (int, error)
}

// TeacherDirectory is the narrow view of the teacher repository the course
// service needs for assignment checks.
type TeacherDirectory interface {
	Exists(context context.Context, id int64) (bool, error)
}
