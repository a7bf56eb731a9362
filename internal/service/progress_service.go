package service

import (
	"errors"
	"fmt"
	"time"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/scoring"
	"studyquest_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressService is the reward engine: it turns a graded submission into
// progress, XP, unlock and activity writes, all inside one transaction.
type ProgressService struct {
	DB           *gorm.DB
	LessonRepo   *repository.LessonRepository
	SubjectRepo  *repository.SubjectRepository
	ProgressRepo *repository.ProgressRepository
	ActivityRepo *repository.ActivityRepository

	loc *time.Location
	now func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	lessonRepo *repository.LessonRepository,
	subjectRepo *repository.SubjectRepository,
	progressRepo *repository.ProgressRepository,
	activityRepo *repository.ActivityRepository,
) *ProgressService {
	return &ProgressService{
		DB:           db,
		LessonRepo:   lessonRepo,
		SubjectRepo:  subjectRepo,
		ProgressRepo: progressRepo,
		ActivityRepo: activityRepo,
		loc:          time.Local,
		now:          time.Now,
	}
}

// SetClock overrides the time source. Test hook.
func (s *ProgressService) SetClock(now func() time.Time, loc *time.Location) {
	s.now = now
	s.loc = loc
}

type CompletionOutcome struct {
	BestScore        int    `json:"bestScore"`
	XpAwarded        int    `json:"xpAwarded"`
	UnlockedLessonID string `json:"unlockedLessonId,omitempty"`
}

// CompleteLesson applies one submission's writes: upsert progress with a
// monotonic best score, append a single XP ledger entry, unlock the next
// lesson in the subject, and mark today's activity. Runs as a single
// transaction; each step wraps its errors with the step name so a caller
// can tell which write failed.
func (s *ProgressService) CompleteLesson(studentID string, lesson *model.Lesson, scorePercent int) (*CompletionOutcome, error) {
	if studentID == "" {
		return nil, util.ErrUnauthenticated
	}

	now := s.now()
	xp := scoring.XpAward(scorePercent, lesson.XpReward)
	outcome := &CompletionOutcome{XpAwarded: xp}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		best, err := s.upsertProgress(tx, studentID, lesson.ID, scorePercent, now)
		if err != nil {
			return fmt.Errorf("progress upsert: %w", err)
		}
		outcome.BestScore = best

		// zero awards are not recorded; the ledger stays meaningful
		if xp > 0 {
			entry := &model.XpLedgerEntry{
				StudentID: studentID,
				Amount:    xp,
				Reason:    fmt.Sprintf("Completed %s (%d%%)", lesson.Title, scorePercent),
			}
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("xp append: %w", err)
			}
		}

		unlockedID, err := s.unlockNext(tx, studentID, lesson)
		if err != nil {
			return fmt.Errorf("unlock next: %w", err)
		}
		outcome.UnlockedLessonID = unlockedID

		activity := &model.DailyActivity{
			StudentID:    studentID,
			ActivityDate: scoring.DayKey(now, s.loc),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "activity_date"}},
			DoNothing: true,
		}).Create(activity).Error; err != nil {
			return fmt.Errorf("daily activity upsert: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// upsertProgress marks the lesson completed and keeps the best score
// monotonic: a worse re-attempt never lowers it.
func (s *ProgressService) upsertProgress(tx *gorm.DB, studentID, lessonID string, scorePercent int, now time.Time) (int, error) {
	var row model.StudentProgress
	err := tx.Where("student_id = ? AND lesson_id = ?", studentID, lessonID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.StudentProgress{
			StudentID:     studentID,
			LessonID:      lessonID,
			Status:        model.ProgressCompleted,
			BestScore:     &scorePercent,
			LastAttemptAt: &now,
		}
		if err := tx.Create(&row).Error; err != nil {
			return 0, err
		}
		return scorePercent, nil
	case err != nil:
		return 0, err
	}

	best := scorePercent
	if row.BestScore != nil && *row.BestScore > best {
		best = *row.BestScore
	}
	row.Status = model.ProgressCompleted
	row.BestScore = &best
	row.LastAttemptAt = &now
	if err := tx.Save(&row).Error; err != nil {
		return 0, err
	}
	return best, nil
}

// unlockNext unlocks the lesson at order_index+1 in the same subject, if
// one exists. Only a missing or locked progress row is touched; a lesson
// already unlocked or completed is never downgraded. Completing the last
// lesson performs no write.
func (s *ProgressService) unlockNext(tx *gorm.DB, studentID string, lesson *model.Lesson) (string, error) {
	var next model.Lesson
	err := tx.Where("subject_id = ? AND order_index = ?", lesson.SubjectID, lesson.OrderIndex+1).First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var row model.StudentProgress
	err = tx.Where("student_id = ? AND lesson_id = ?", studentID, next.ID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.StudentProgress{
			StudentID: studentID,
			LessonID:  next.ID,
			Status:    model.ProgressUnlocked,
		}
		if err := tx.Create(&row).Error; err != nil {
			return "", err
		}
		return next.ID, nil
	case err != nil:
		return "", err
	}

	if row.Status != model.ProgressLocked {
		return "", nil
	}
	if err := tx.Model(&row).Update("status", model.ProgressUnlocked).Error; err != nil {
		return "", err
	}
	return next.ID, nil
}

// SeedForStudent creates the initial progress rows for every subject of
// the student's grade: first lesson unlocked, the rest locked. Existing
// rows are left untouched, so re-running onboarding is harmless.
func (s *ProgressService) SeedForStudent(studentID string, grade int) error {
	if studentID == "" {
		return util.ErrUnauthenticated
	}

	subjects, err := s.SubjectRepo.ListByGrade(grade)
	if err != nil {
		return err
	}

	for _, subject := range subjects {
		lessons, err := s.LessonRepo.ListBySubject(subject.ID)
		if err != nil {
			return err
		}
		for i, lesson := range lessons {
			status := model.ProgressLocked
			if i == 0 {
				status = model.ProgressUnlocked
			}
			row := &model.StudentProgress{
				StudentID: studentID,
				LessonID:  lesson.ID,
				Status:    status,
			}
			if err := s.ProgressRepo.CreateIfAbsent(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreakFor computes the student's current consecutive-day streak from
// their recorded activity dates.
func (s *ProgressService) StreakFor(studentID string) (int, error) {
	days, err := s.ActivityRepo.ListDates(studentID)
	if err != nil {
		return 0, err
	}
	return scoring.Streak(days, s.now(), s.loc), nil
}
