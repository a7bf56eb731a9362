package service

import (
	"testing"
	"time"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB, progress *ProgressService) *DashboardService {
	return NewDashboardService(
		repository.NewUserRepository(db),
		repository.NewSubjectRepository(db),
		repository.NewLessonRepository(db),
		repository.NewProgressRepository(db),
		repository.NewXpRepository(db),
		progress,
	)
}

func TestGetStudentDashboard(t *testing.T) {
	db := newTestDB(t)
	progress := newProgressService(db)
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	progress.SetClock(fixedClock(today), time.UTC)
	svc := newDashboardService(db, progress)

	auth := newAuthService(db)
	user, err := auth.Register(RegisterRequest{Email: "ana@example.com", Password: "password123", Role: "student", FullName: "Ana"})
	require.NoError(t, err)
	_, err = auth.CompleteOnboarding(user.ID, "Ana", 11, "A")
	require.NoError(t, err)

	subject := createSubject(t, db, "SCI", 11)
	first := createLesson(t, db, subject.ID, 1, 10)
	second := createLesson(t, db, subject.ID, 2, 10)
	require.NoError(t, progress.SeedForStudent(user.ID, 11))

	_, err = progress.CompleteLesson(user.ID, first, 100)
	require.NoError(t, err)

	dashboard, err := svc.GetStudentDashboard(user.ID)
	require.NoError(t, err)

	assert.Equal(t, "Ana", dashboard.StudentName)
	assert.Equal(t, 11, dashboard.Grade)
	assert.Equal(t, 10, dashboard.TotalXp)
	assert.Equal(t, 1, dashboard.Level)
	assert.Equal(t, 990, dashboard.XpToNext)
	assert.Equal(t, 1, dashboard.Streak)
	assert.Equal(t, 1, dashboard.LessonsDone)

	require.Len(t, dashboard.Subjects, 1)
	summary := dashboard.Subjects[0]
	assert.Equal(t, 2, summary.LessonCount)
	assert.Equal(t, 1, summary.Completed)

	statusByLesson := make(map[string]string, len(summary.Lessons))
	for _, l := range summary.Lessons {
		statusByLesson[l.Lesson.ID] = string(l.Status)
	}
	assert.Equal(t, "completed", statusByLesson[first.ID])
	assert.Equal(t, "unlocked", statusByLesson[second.ID])
}

func TestGetStudentDashboardWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	progress := newProgressService(db)
	svc := newDashboardService(db, progress)

	// a student who skipped onboarding still gets a rendered dashboard
	dashboard, err := svc.GetStudentDashboard("unknown-student")
	require.NoError(t, err)
	assert.Equal(t, "Student", dashboard.StudentName)
	assert.Equal(t, 11, dashboard.Grade)
	assert.Equal(t, 0, dashboard.TotalXp)
	assert.Equal(t, 1, dashboard.Level)
}

func TestLevelThresholds(t *testing.T) {
	db := newTestDB(t)
	progress := newProgressService(db)
	svc := newDashboardService(db, progress)

	xp := repository.NewXpRepository(db)
	student := createStudent(t, db, "ben@example.com")

	cases := []struct {
		total    int
		level    int
		xpToNext int
	}{
		{0, 1, 1000},
		{999, 1, 1},
		{1000, 2, 1000},
		{2500, 3, 500},
	}

	var granted int
	for _, tc := range cases {
		if delta := tc.total - granted; delta > 0 {
			require.NoError(t, xp.Append(&model.XpLedgerEntry{StudentID: student.ID, Amount: delta, Reason: "test"}))
			granted = tc.total
		}

		dashboard, err := svc.GetStudentDashboard(student.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.level, dashboard.Level, "total %d", tc.total)
		assert.Equal(t, tc.xpToNext, dashboard.XpToNext, "total %d", tc.total)
	}
}
