package course_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/school/course"
	"github.com/minhvu-dev/eduka/pkg/pointer"
)

/*
TestNewCourse covers the course factory invariants.
*/
func TestNewCourse(t *testing.T) {
	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		title       string
		description *string
		startDate   time.Time
		teacherID   int64
		isValid     bool
	}{
		{"valid", "Algebra I", pointer.To("Linear equations and inequalities"), startDate, 1, true},
		{"no_description", "Algebra I", nil, startDate, 1, true},
		{"blank_description_cleared", "Algebra I", pointer.To("   "), startDate, 1, true},
		{"trims_title", "  Algebra I  ", nil, startDate, 1, true},
		{"title_too_short", "A", nil, startDate, 1, false},
		{"title_too_long", strings.Repeat("a", 201), nil, startDate, 1, false},
		{"blank_title", "   ", nil, startDate, 1, false},
		{"description_too_long", "Algebra I", pointer.To(strings.Repeat("a", 2001)), startDate, 1, false},
		{"zero_start_date", "Algebra I", nil, time.Time{}, 1, false},
		{"zero_teacher", "Algebra I", nil, startDate, 0, false},
		{"negative_teacher", "Algebra I", nil, startDate, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := course.NewCourse(tt.title, tt.description, tt.startDate, tt.teacherID)

			if !tt.isValid {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Algebra I", created.Title)
			assert.Equal(t, tt.teacherID, created.TeacherProfileID)
			if tt.name == "blank_description_cleared" {
				assert.Nil(t, created.Description)
			}
		})
	}
}

/*
TestCourse_Updates verifies the mutators and description clearing.
*/
func TestCourse_Updates(t *testing.T) {
	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	created, err := course.NewCourse("Algebra I", pointer.To("Intro"), startDate, 1)
	require.NoError(t, err)

	require.NoError(t, created.UpdateTitle("  Algebra II "))
	assert.Equal(t, "Algebra II", created.Title)
	assert.NotNil(t, created.UpdatedAt)

	assert.Error(t, created.UpdateTitle("x"))
	assert.Equal(t, "Algebra II", created.Title)

	require.NoError(t, created.UpdateDescription(nil))
	assert.Nil(t, created.Description)

	assert.Error(t, created.UpdateStartDate(time.Time{}))
	require.NoError(t, created.UpdateStartDate(startDate.AddDate(0, 1, 0)))
	assert.True(t, created.StartDate.Equal(startDate.AddDate(0, 1, 0)))

	assert.Error(t, created.AssignTeacher(0))
	require.NoError(t, created.AssignTeacher(4))
	assert.Equal(t, int64(4), created.TeacherProfileID)
}

// stubRepository records calls for service tests.
type stubRepository struct {
	course.Repository

	created         *course.Course
	byID            map[int64]*course.Course
	enrollmentCount int
	deleted         []int64
}

func (stub *stubRepository) Create(_ context.Context, created *course.Course) error {
	created.ID = 11
	created.CreatedAt = time.Now()
	stub.created = created
	return nil
}

func (stub *stubRepository) FindByID(_ context.Context, id int64) (*course.Course, error) {
	found, ok := stub.byID[id]
	if !ok {
		return nil, apperr.NotFound("Course")
	}
	copied := *found
	return &copied, nil
}

func (stub *stubRepository) Update(_ context.Context, _ *course.Course) error {
	return nil
}

func (stub *stubRepository) CountEnrollments(_ context.Context, _ int64) (int, error) {
	return stub.enrollmentCount, nil
}

func (stub *stubRepository) Delete(_ context.Context, id int64) error {
	stub.deleted = append(stub.deleted, id)
	return nil
}

// stubTeachers answers existence checks from a fixed set.
type stubTeachers struct {
	known map[int64]bool
}

func (stub *stubTeachers) Exists(_ context.Context, id int64) (bool, error) {
	return stub.known[id], nil
}

func testService(repo course.Repository, teachers course.TeacherDirectory) *course.Service {
	return course.NewService(repo, teachers, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateCourse checks teacher existence enforcement.
*/
func TestService_CreateCourse(t *testing.T) {
	stub := &stubRepository{}
	service := testService(stub, &stubTeachers{known: map[int64]bool{1: true}})

	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	created, err := service.CreateCourse(context.Background(), course.CreateInput{
		Title:            "Algebra I",
		StartDate:        startDate,
		TeacherProfileID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	// Unknown teacher is a validation failure, not an FK explosion.
	stub.created = nil
	_, err = service.CreateCourse(context.Background(), course.CreateInput{
		Title:            "Algebra I",
		StartDate:        startDate,
		TeacherProfileID: 42,
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Contains(t, apperr.As(err).Message, "42")
	assert.Nil(t, stub.created)
}

/*
TestService_UpdateCourse covers partial updates and reassignment checks.
*/
func TestService_UpdateCourse(t *testing.T) {
	startDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	existing, err := course.NewCourse("Algebra I", pointer.To("Intro"), startDate, 1)
	require.NoError(t, err)
	existing.ID = 11

	stub := &stubRepository{byID: map[int64]*course.Course{11: existing}}
	service := testService(stub, &stubTeachers{known: map[int64]bool{1: true, 2: true}})

	updated, err := service.UpdateCourse(context.Background(), 11, course.UpdateInput{
		Title:            pointer.To("Algebra II"),
		TeacherProfileID: pointer.To(int64(2)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Algebra II", updated.Title)
	assert.Equal(t, int64(2), updated.TeacherProfileID)
	assert.NotNil(t, updated.Description)

	// ClearDescription drops it without touching anything else.
	updated, err = service.UpdateCourse(context.Background(), 11, course.UpdateInput{ClearDescription: true})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)

	// Reassigning to an unknown teacher fails.
	_, err = service.UpdateCourse(context.Background(), 11, course.UpdateInput{
		TeacherProfileID: pointer.To(int64(99)),
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	_, err = service.UpdateCourse(context.Background(), 404, course.UpdateInput{})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_DeleteCourse verifies enrollment references block deletion.
*/
func TestService_DeleteCourse(t *testing.T) {
	stub := &stubRepository{enrollmentCount: 3}
	service := testService(stub, &stubTeachers{})

	err := service.DeleteCourse(context.Background(), 11)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Contains(t, ae.Message, "3 enrollment(s)")
	assert.Empty(t, stub.deleted)

	stub.enrollmentCount = 0
	require.NoError(t, service.DeleteCourse(context.Background(), 11))
	assert.Equal(t, []int64{11}, stub.deleted)
}
