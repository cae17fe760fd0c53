package course

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
)

type Service struct {
	repo     Repository
	teachers TeacherDirectory
	logger   *slog.Logger
}

func NewService(repo Repository, teachers TeacherDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		teachers: teachers,
		logger:   logger,
	}
}

func (service *Service) ListCourses(context context.Context, limit, offset int) ([]*Course, int, error) {
	return service.repo.List(context, limit, offset)
}

func (service *Service) ListCoursesByTeacher(context context.Context, teacherProfileID int64, limit, offset int) ([]*Course, int, error) {
	return service.repo.ListByTeacher(context, teacherProfileID, limit, offset)
}

func (service *Service) GetCourse(context context.Context, id int64) (*Course, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetCourseWithDetails(context context.Context, id int64) (*Course, error) {
	return service.repo.FindWithDetails(context, id)
}

// CreateInput holds the data for a new course.
type CreateInput struct {
	Title            string
	Description      *string
	StartDate        time.Time
	TeacherProfileID int64
}

func (service *Service) CreateCourse(context context.Context, input CreateInput) (*Course, error) {
	course, err := NewCourse(input.Title, input.Description, input.StartDate, input.TeacherProfileID)
	if err != nil {
		return nil, err
	}

	if err := service.requireTeacher(context, course.TeacherProfileID); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_created",
		slog.Int64("course_id", course.ID),
		slog.Int64("teacher_id", course.TeacherProfileID),
	)
	return course, nil
}

// UpdateInput carries optional replacements; nil fields are left unchanged.
type UpdateInput struct {
	Title            *string
	Description      *string
	ClearDescription bool
	StartDate        *time.Time
	TeacherProfileID *int64
}

func (service *Service) UpdateCourse(context context.Context, id int64, input UpdateInput) (*Course, error) {
	course, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := course.UpdateTitle(*input.Title); err != nil {
			return nil, err
		}
	}

	if input.Description != nil || input.ClearDescription {
		if err := course.UpdateDescription(input.Description); err != nil {
			return nil, err
		}
	}

	if input.StartDate != nil {
		if err := course.UpdateStartDate(*input.StartDate); err != nil {
			return nil, err
		}
	}

	if input.TeacherProfileID != nil {
		if err := course.AssignTeacher(*input.TeacherProfileID); err != nil {
			return nil, err
		}
		if err := service.requireTeacher(context, course.TeacherProfileID); err != nil {
			return nil, err
		}
	}

	if err := service.repo.Update(context, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_updated", slog.Int64("course_id", id))
	return course, nil
}

// DeleteCourse removes a course unless enrollments still reference it.
// The FK ON DELETE RESTRICT constraint is the authoritative backstop for
// enrollments created concurrently with this check.
func (service *Service) DeleteCourse(context context.Context, id int64) error {
	enrollmentCount, err := service.repo.CountEnrollments(context, id)
	if err != nil {
		return err
	}

	if enrollmentCount > 0 {
		return apperr.Conflict(fmt.Sprintf("Course cannot be deleted: %d enrollment(s) reference it", enrollmentCount))
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("course_deleted", slog.Int64("course_id", id))
	return nil
}

// requireTeacher turns a missing teacher profile into a validation error.
func (service *Service) requireTeacher(context context.Context, teacherProfileID int64) error {
	exists, err := service.teachers.Exists(context, teacherProfileID)
	if err != nil {
		return err
	}

	if !exists {
		return apperr.ValidationError(fmt.Sprintf("Teacher profile %d does not exist", teacherProfileID))
	}
	return nil
}
