package service

import (
	"testing"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTeacherService(db *gorm.DB) *TeacherService {
	return NewTeacherService(
		repository.NewRosterRepository(db),
		repository.NewUserRepository(db),
		repository.NewXpRepository(db),
	)
}

func TestLinkStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newTeacherService(db)
	auth := newAuthService(db)

	teacher, err := auth.Register(RegisterRequest{Email: "t@example.com", Password: "password123", Role: model.Teacher})
	require.NoError(t, err)
	student, err := auth.Register(RegisterRequest{Email: "s@example.com", Password: "password123", Role: model.Student, FullName: "Sam"})
	require.NoError(t, err)

	require.NoError(t, svc.LinkStudent(teacher.ID, "s@example.com"))

	t.Run("linking twice is a no-op", func(t *testing.T) {
		require.NoError(t, svc.LinkStudent(teacher.ID, "s@example.com"))

		var count int64
		require.NoError(t, db.Model(&model.TeacherStudent{}).Where("teacher_id = ?", teacher.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown email", func(t *testing.T) {
		err := svc.LinkStudent(teacher.ID, "nobody@example.com")
		assert.ErrorIs(t, err, util.ErrProfileNotFound)
	})

	t.Run("cannot link another teacher", func(t *testing.T) {
		_, err := auth.Register(RegisterRequest{Email: "t2@example.com", Password: "password123", Role: model.Teacher})
		require.NoError(t, err)

		err = svc.LinkStudent(teacher.ID, "t2@example.com")
		assert.ErrorIs(t, err, util.ErrPermissionDenied)
	})

	t.Run("roster shows the linked student", func(t *testing.T) {
		xp := repository.NewXpRepository(db)
		require.NoError(t, xp.Append(&model.XpLedgerEntry{StudentID: student.ID, Amount: 42, Reason: "test"}))

		roster, err := svc.GetRoster(teacher.ID)
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, student.ID, roster[0].StudentID)
		assert.Equal(t, "Sam", roster[0].FullName)
		assert.Equal(t, "s@example.com", roster[0].Email)
		assert.Equal(t, 42, roster[0].TotalXp)
	})
}

func TestGetRosterEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newTeacherService(db)

	roster, err := svc.GetRoster("no-such-teacher")
	require.NoError(t, err)
	assert.Empty(t, roster)
}
