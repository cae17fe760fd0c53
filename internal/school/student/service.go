package student

import (
	"context"
	"log/slog"
	"time"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListStudents(context context.Context, limit, offset int) ([]*Profile, int, error) {
	return service.repo.List(context, limit, offset)
}

// ListActiveStudents returns only profiles whose owning account is active.
func (service *Service) ListActiveStudents(context context.Context, limit, offset int) ([]*Profile, int, error) {
	return service.repo.ListActive(context, limit, offset)
}

func (service *Service) GetStudent(context context.Context, id int64) (*Profile, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetStudentWithEnrollments(context context.Context, id int64) (*Profile, error) {
	return service.repo.FindWithEnrollments(context, id)
}

func (service *Service) CreateStudent(context context.Context, userID int64, fullName string, birthDate time.Time) (*Profile, error) {
	profile, err := NewProfile(userID, fullName, birthDate)
	if err != nil {
		return nil, err
	}

	// The unique userid constraint rejects a second profile for the same user.
	if err := service.repo.Create(context, profile); err != nil {
		return nil, err
	}

	service.logger.Info("student_profile_created",
		slog.Int64("student_id", profile.ID),
		slog.Int64("user_id", profile.UserID),
	)
	return profile, nil
}

func (service *Service) UpdateStudentName(context context.Context, id int64, fullName string) (*Profile, error) {
	profile, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := profile.UpdateFullName(fullName); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateFullName(context, id, profile.FullName); err != nil {
		return nil, err
	}

	service.logger.Info("student_profile_updated", slog.Int64("student_id", id))
	return profile, nil
}

func (service *Service) DeleteStudent(context context.Context, id int64) error {
	// FK RESTRICT on enrollments surfaces as Conflict when the student
	// still has enrollment records.
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("student_profile_deleted", slog.Int64("student_id", id))
	return nil
}
