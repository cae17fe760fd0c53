package student_test

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
	"github.com/minhvu-dev/eduka/internal/school/student"
)

/*
TestNewProfile covers the student factory invariants.
*/
func TestNewProfile(t *testing.T) {
	validBirthDate := time.Now().AddDate(-20, 0, 0)

	tests := []struct {
		name      string
		userID    int64
		fullName  string
		birthDate time.Time
		isValid   bool
	}{
		{"valid", 1, "An Nguyen", validBirthDate, true},
		{"trims_name", 1, "  An Nguyen  ", validBirthDate, true},
		{"zero_user_id", 0, "An Nguyen", validBirthDate, false},
		{"negative_user_id", -1, "An Nguyen", validBirthDate, false},
		{"name_too_short", 1, "A", validBirthDate, false},
		{"name_too_long", 1, strings.Repeat("a", 201), validBirthDate, false},
		{"blank_name", 1, "   ", validBirthDate, false},
		{"birth_date_now", 1, "An Nguyen", time.Now().Add(time.Hour), false},
		{"birth_date_future", 1, "An Nguyen", time.Now().AddDate(1, 0, 0), false},
		{"older_than_120_years", 1, "An Nguyen", time.Now().AddDate(-121, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := student.NewProfile(tt.userID, tt.fullName, tt.birthDate)

			if !tt.isValid {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "An Nguyen", profile.FullName)
			assert.Equal(t, tt.userID, profile.UserID)
			assert.True(t, profile.BirthDate.Equal(tt.birthDate))
		})
	}
}

/*
TestProfile_UpdateFullName verifies name rules and birth date immutability.
*/
func TestProfile_UpdateFullName(t *testing.T) {
	birthDate := time.Now().AddDate(-20, 0, 0)
	profile, err := student.NewProfile(1, "An Nguyen", birthDate)
	require.NoError(t, err)

	require.NoError(t, profile.UpdateFullName("  Binh Tran "))
	assert.Equal(t, "Binh Tran", profile.FullName)
	assert.True(t, profile.BirthDate.Equal(birthDate))
	assert.NotNil(t, profile.UpdatedAt)

	// Invalid rename leaves the profile untouched.
	assert.Error(t, profile.UpdateFullName("x"))
	assert.Equal(t, "Binh Tran", profile.FullName)
}

// stubRepository records calls for service tests.
type stubRepository struct {
	student.Repository

	created *student.Profile
	byID    map[int64]*student.Profile
	renamed map[int64]string
}

func (stub *stubRepository) Create(_ context.Context, profile *student.Profile) error {
	profile.ID = 7
	profile.CreatedAt = time.Now()
	stub.created = profile
	return nil
}

func (stub *stubRepository) FindByID(_ context.Context, id int64) (*student.Profile, error) {
	profile, ok := stub.byID[id]
	if !ok {
		return nil, apperr.NotFound("Student")
	}
	copied := *profile
	return &copied, nil
}

func (stub *stubRepository) UpdateFullName(_ context.Context, id int64, fullName string) error {
	if stub.renamed == nil {
		stub.renamed = map[int64]string{}
	}
	stub.renamed[id] = fullName
	return nil
}

func testService(repo student.Repository) *student.Service {
	return student.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateStudent checks factory enforcement and persistence flow.
*/
func TestService_CreateStudent(t *testing.T) {
	stub := &stubRepository{}
	service := testService(stub)

	profile, err := service.CreateStudent(context.Background(), 3, "An Nguyen", time.Now().AddDate(-20, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, int64(7), profile.ID)
	assert.Same(t, profile, stub.created)

	// Invalid input never reaches the repository.
	stub.created = nil
	_, err = service.CreateStudent(context.Background(), 0, "An Nguyen", time.Now().AddDate(-20, 0, 0))
	require.Error(t, err)
	assert.Nil(t, stub.created)
}

/*
TestService_UpdateStudentName covers the load-mutate-persist flow.
*/
func TestService_UpdateStudentName(t *testing.T) {
	existing, err := student.NewProfile(3, "An Nguyen", time.Now().AddDate(-20, 0, 0))
	require.NoError(t, err)
	existing.ID = 7

	stub := &stubRepository{byID: map[int64]*student.Profile{7: existing}}
	service := testService(stub)

	updated, err := service.UpdateStudentName(context.Background(), 7, " Binh Tran ")
	require.NoError(t, err)
	assert.Equal(t, "Binh Tran", updated.FullName)
	assert.Equal(t, "Binh Tran", stub.renamed[7])

	_, err = service.UpdateStudentName(context.Background(), 99, "Binh Tran")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
