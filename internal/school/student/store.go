package student

import "context"

// Repository defines the data access contract for student profiles.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Profile, int, error)
	ListActive(context context.Context, limit, offset int) ([]*Profile, int, error)
	FindByID(context context.Context, id int64) (*Profile, error)
	FindWithEnrollments(context context.Context, id int64) (*Profile, error)
	Create(context context.Context, profile *Profile) error
	UpdateFullName(context context.Context, id int64, fullName string) error
	Delete(context context.Context, id int64) error
	Exists(context context.Context, id int64) (bool, error)
}
