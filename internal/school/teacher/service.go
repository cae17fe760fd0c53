package teacher

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

func (service *Service) ListTeachers(context context.Context, limit, offset int) ([]*Profile, int, error) {
	return service.repo.List(context, limit, offset)
}

// ListActiveTeachers returns only profiles whose owning account is active.
func (service *Service) ListActiveTeachers(context context.Context, limit, offset int) ([]*Profile, int, error) {
	return service.repo.ListActive(context, limit, offset)
}

func (service *Service) GetTeacher(context context.Context, id int64) (*Profile, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetTeacherWithCourses(context context.Context, id int64) (*Profile, error) {
	return service.repo.FindWithCourses(context, id)
}

func (service *Service) CreateTeacher(context context.Context, userID int64, fullName string, hireDate time.Time) (*Profile, error) {
	profile, err := NewProfile(userID, fullName, hireDate)
	if err != nil {
		return nil, err
	}

	// The unique userid constraint rejects a second profile for the same user.
	if err := service.repo.Create(context, profile); err != nil {
		return nil, err
	}

	service.logger.Info("teacher_profile_created",
		slog.Int64("teacher_id", profile.ID),
		slog.Int64("user_id", profile.UserID),
	)
	return profile, nil
}

func (service *Service) UpdateTeacherName(context context.Context, id int64, fullName string) (*Profile, error) {
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

	service.logger.Info("teacher_profile_updated", slog.Int64("teacher_id", id))
	return profile, nil
}

func (service *Service) DeleteTeacher(context context.Context, id int64) error {
	// FK RESTRICT on courses surfaces as Conflict while the teacher still
	// has assigned courses.
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("teacher_profile_deleted", slog.Int64("teacher_id", id))
	return nil
}
