package enrollment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/school/enrollment"
)

/*
TestNewEnrollment covers the factory invariants and the enroll date default.
*/
func TestNewEnrollment(t *testing.T) {
	pastDate := time.Now().AddDate(0, -1, 0)

	tests := []struct {
		name       string
		studentID  int64
		courseID   int64
		enrollDate time.Time
		isValid    bool
	}{
		{"valid", 1, 2, pastDate, true},
		{"defaults_enroll_date", 1, 2, time.Time{}, true},
		{"zero_student", 0, 2, pastDate, false},
		{"negative_student", -1, 2, pastDate, false},
		{"zero_course", 1, 0, pastDate, false},
		{"future_enroll_date", 1, 2, time.Now().AddDate(0, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := enrollment.NewEnrollment(tt.studentID, tt.courseID, tt.enrollDate)

			if !tt.isValid {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Nil(t, created.Grade)
			if tt.enrollDate.IsZero() {
				assert.WithinDuration(t, time.Now(), created.EnrollDate, time.Minute)
			} else {
				assert.True(t, created.EnrollDate.Equal(tt.enrollDate))
			}
		})
	}
}

/*
TestEnrollment_Grading verifies grade bounds, replacement and removal.
*/
func TestEnrollment_Grading(t *testing.T) {
	created, err := enrollment.NewEnrollment(1, 2, time.Time{})
	require.NoError(t, err)

	require.NoError(t, created.AssignGrade(87.5))
	require.NotNil(t, created.Grade)
	assert.Equal(t, 87.5, created.Grade.Value())
	assert.NotNil(t, created.UpdatedAt)

	// Out-of-scale values leave the grade untouched.
	err = created.AssignGrade(100.01)
	require.Error(t, err)
	assert.Equal(t, "OUT_OF_RANGE", apperr.As(err).Code)
	assert.Equal(t, 87.5, created.Grade.Value())

	require.NoError(t, created.AssignGrade(0))
	assert.Equal(t, 0.0, created.Grade.Value())

	created.RemoveGrade()
	assert.Nil(t, created.Grade)
}

// stubRepository records calls for service tests.
type stubRepository struct {
	enrollment.Repository

	created  *enrollment.Enrollment
	byID     map[int64]*enrollment.Enrollment
	enrolled map[[2]int64]bool
	grades   map[int64]*float64
	deleted  []int64
}

func (stub *stubRepository) Create(_ context.Context, created *enrollment.Enrollment) error {
	created.ID = 21
	created.CreatedAt = time.Now()
	stub.created = created
	return nil
}

func (stub *stubRepository) FindByID(_ context.Context, id int64) (*enrollment.Enrollment, error) {
	found, ok := stub.byID[id]
	if !ok {
		return nil, apperr.NotFound("Enrollment")
	}
	copied := *found
	return &copied, nil
}

func (stub *stubRepository) UpdateGrade(_ context.Context, id int64, grade *float64) error {
	if stub.grades == nil {
		stub.grades = map[int64]*float64{}
	}
	stub.grades[id] = grade
	return nil
}

func (stub *stubRepository) Delete(_ context.Context, id int64) error {
	stub.deleted = append(stub.deleted, id)
	return nil
}

func (stub *stubRepository) IsEnrolled(_ context.Context, studentID, courseID int64) (bool, error) {
	return stub.enrolled[[2]int64{studentID, courseID}], nil
}

// stubDirectory answers existence checks from a fixed set.
type stubDirectory struct {
	known map[int64]bool
}

func (stub *stubDirectory) Exists(_ context.Context, id int64) (bool, error) {
	return stub.known[id], nil
}

func testService(repo enrollment.Repository, students, courses *stubDirectory) *enrollment.Service {
	return enrollment.NewService(repo, students, courses, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_EnrollStudent covers the precondition chain.
*/
func TestService_EnrollStudent(t *testing.T) {
	students := &stubDirectory{known: map[int64]bool{1: true}}
	courses := &stubDirectory{known: map[int64]bool{2: true}}

	t.Run("success", func(t *testing.T) {
		stub := &stubRepository{}
		service := testService(stub, students, courses)

		created, err := service.EnrollStudent(context.Background(), 1, 2, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, int64(21), created.ID)
		assert.Same(t, created, stub.created)
	})

	t.Run("unknown_student", func(t *testing.T) {
		stub := &stubRepository{}
		service := testService(stub, students, courses)

		_, err := service.EnrollStudent(context.Background(), 9, 2, time.Time{})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Nil(t, stub.created)
	})

	t.Run("unknown_course", func(t *testing.T) {
		stub := &stubRepository{}
		service := testService(stub, students, courses)

		_, err := service.EnrollStudent(context.Background(), 1, 9, time.Time{})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Nil(t, stub.created)
	})

	t.Run("already_enrolled", func(t *testing.T) {
		stub := &stubRepository{enrolled: map[[2]int64]bool{{1, 2}: true}}
		service := testService(stub, students, courses)

		_, err := service.EnrollStudent(context.Background(), 1, 2, time.Time{})
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
		assert.Nil(t, stub.created)
	})
}

/*
TestService_Grading covers assignment, removal and the not-found path.
*/
func TestService_Grading(t *testing.T) {
	existing, err := enrollment.NewEnrollment(1, 2, time.Time{})
	require.NoError(t, err)
	existing.ID = 21

	stub := &stubRepository{byID: map[int64]*enrollment.Enrollment{21: existing}}
	service := testService(stub, &stubDirectory{}, &stubDirectory{})

	graded, err := service.AssignGrade(context.Background(), 21, 92.5)
	require.NoError(t, err)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 92.5, graded.Grade.Value())
	require.NotNil(t, stub.grades[21])
	assert.Equal(t, 92.5, *stub.grades[21])

	// Out-of-scale never reaches the repository.
	stub.grades = nil
	_, err = service.AssignGrade(context.Background(), 21, -0.01)
	require.Error(t, err)
	assert.Equal(t, "OUT_OF_RANGE", apperr.As(err).Code)
	assert.Empty(t, stub.grades)

	ungraded, err := service.RemoveGrade(context.Background(), 21)
	require.NoError(t, err)
	assert.Nil(t, ungraded.Grade)
	grade, recorded := stub.grades[21]
	assert.True(t, recorded)
	assert.Nil(t, grade)

	_, err = service.AssignGrade(context.Background(), 404, 50)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Unenroll verifies deletion delegates to the repository.
*/
func TestService_Unenroll(t *testing.T) {
	stub := &stubRepository{}
	service := testService(stub, &stubDirectory{}, &stubDirectory{})

	require.NoError(t, service.Unenroll(context.Background(), 21))
	assert.Equal(t, []int64{21}, stub.deleted)
}
