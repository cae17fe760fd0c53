package teacher_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvu-dev/eduka/internal/platform/apperr"
	"github.com/minhvu-dev/eduka/internal/school/teacher"
)

/*
TestNewProfile covers the teacher factory invariants. Unlike the student
birth date, today is an acceptable hire date.
*/
func TestNewProfile(t *testing.T) {
	validHireDate := time.Now().AddDate(-5, 0, 0)

	tests := []struct {
		name     string
		userID   int64
		fullName string
		hireDate time.Time
		isValid  bool
	}{
		{"valid", 1, "Chi Le", validHireDate, true},
		{"hired_moments_ago", 1, "Chi Le", time.Now().Add(-time.Second), true},
		{"zero_user_id", 0, "Chi Le", validHireDate, false},
		{"name_too_short", 1, "C", validHireDate, false},
		{"name_too_long", 1, strings.Repeat("a", 201), validHireDate, false},
		{"hire_date_future", 1, "Chi Le", time.Now().AddDate(0, 0, 1), false},
		{"older_than_50_years", 1, "Chi Le", time.Now().AddDate(-51, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := teacher.NewProfile(tt.userID, tt.fullName, tt.hireDate)

			if !tt.isValid {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.userID, profile.UserID)
			assert.True(t, profile.HireDate.Equal(tt.hireDate))
		})
	}
}

/*
TestProfile_UpdateFullName verifies hire date immutability on rename.
*/
func TestProfile_UpdateFullName(t *testing.T) {
	hireDate := time.Now().AddDate(-5, 0, 0)
	profile, err := teacher.NewProfile(1, "Chi Le", hireDate)
	require.NoError(t, err)

	require.NoError(t, profile.UpdateFullName("Dung Pham"))
	assert.Equal(t, "Dung Pham", profile.FullName)
	assert.True(t, profile.HireDate.Equal(hireDate))
}
