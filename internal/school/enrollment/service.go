package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
)

type Service struct {
	repo     Repository
	students StudentDirectory
	courses  CourseDirectory
	logger   *slog.Logger
}

func NewService(repo Repository, students StudentDirectory, courses CourseDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		students: students,
		courses:  courses,
		logger:   logger,
	}
}

func (service *Service) ListEnrollments(context context.Context, limit, offset int) ([]*Enrollment, int, error) {
	return service.repo.List(context, limit, offset)
}

func (service *Service) ListByStudent(context context.Context, studentProfileID int64) ([]*Enrollment, error) {
	return service.repo.ListByStudent(context, studentProfileID)
}

func (service *Service) ListByCourse(context context.Context, courseID int64) ([]*Enrollment, error) {
	return service.repo.ListByCourse(context, courseID)
}

func (service *Service) GetEnrollment(context context.Context, id int64) (*Enrollment, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetEnrollmentWithDetails(context context.Context, id int64) (*Details, error) {
	return service.repo.FindWithDetails(context, id)
}

// EnrollStudent links a student to a course. Both ends must exist and the
// pair must not already be enrolled. The unique (studentprofileid, courseid)
// index is the backstop for concurrent duplicates.
func (service *Service) EnrollStudent(context context.Context, studentProfileID, courseID int64, enrollDate time.Time) (*Enrollment, error) {
	enrollment, err := NewEnrollment(studentProfileID, courseID, enrollDate)
	if err != nil {
		return nil, err
	}

	studentExists, err := service.students.Exists(context, studentProfileID)
	if err != nil {
		return nil, err
	}
	if !studentExists {
		return nil, apperr.ValidationError(fmt.Sprintf("Student profile %d does not exist", studentProfileID))
	}

	courseExists, err := service.courses.Exists(context, courseID)
	if err != nil {
		return nil, err
	}
	if !courseExists {
		return nil, apperr.ValidationError(fmt.Sprintf("Course %d does not exist", courseID))
	}

	alreadyEnrolled, err := service.repo.IsEnrolled(context, studentProfileID, courseID)
	if err != nil {
		return nil, err
	}
	if alreadyEnrolled {
		return nil, apperr.Conflict("Student is already enrolled in this course")
	}

	if err := service.repo.Create(context, enrollment); err != nil {
		return nil, err
	}

	service.logger.Info("student_enrolled",
		slog.Int64("enrollment_id", enrollment.ID),
		slog.Int64("student_id", studentProfileID),
		slog.Int64("course_id", courseID),
	)
	return enrollment, nil
}

// AssignGrade records or replaces the grade for an enrollment.
func (service *Service) AssignGrade(context context.Context, id int64, grade float64) (*Enrollment, error) {
	enrollment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := enrollment.AssignGrade(grade); err != nil {
		return nil, err
	}

	gradeValue := enrollment.Grade.Value()
	if err := service.repo.UpdateGrade(context, id, &gradeValue); err != nil {
		return nil, err
	}

	service.logger.Info("grade_assigned",
		slog.Int64("enrollment_id", id),
		slog.Float64("grade", gradeValue),
	)
	return enrollment, nil
}

// RemoveGrade reverts an enrollment to ungraded.
func (service *Service) RemoveGrade(context context.Context, id int64) (*Enrollment, error) {
	enrollment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	enrollment.RemoveGrade()
	if err := service.repo.UpdateGrade(context, id, nil); err != nil {
		return nil, err
	}

	service.logger.Info("grade_removed", slog.Int64("enrollment_id", id))
	return enrollment, nil
}

// Unenroll deletes an enrollment outright, grade included.
func (service *Service) Unenroll(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("student_unenrolled", slog.Int64("enrollment_id", id))
	return nil
}
