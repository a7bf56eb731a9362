package service

import (
	"math"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/pkg/logger"

	"go.uber.org/zap"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	SubjectRepo  *repository.SubjectRepository
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.ProgressRepository
	XpRepo       *repository.XpRepository
	Progress     *ProgressService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	lessonRepo *repository.LessonRepository,
	progressRepo *repository.ProgressRepository,
	xpRepo *repository.XpRepository,
	progress *ProgressService,
) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		SubjectRepo:  subjectRepo,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
		XpRepo:       xpRepo,
		Progress:     progress,
	}
}

type SubjectSummary struct {
	Subject     model.Subject        `json:"subject"`
	Lessons     []LessonWithProgress `json:"lessons"`
	LessonCount int                  `json:"lessonCount"`
	Completed   int                  `json:"completed"`
}

type LessonWithProgress struct {
	Lesson    model.Lesson         `json:"lesson"`
	Status    model.ProgressStatus `json:"status"`
	BestScore *int                 `json:"bestScore"`
}

type Dashboard struct {
	StudentName string           `json:"studentName"`
	Grade       int              `json:"grade"`
	Subjects    []SubjectSummary `json:"subjects"`
	TotalXp     int              `json:"totalXp"`
	Level       int              `json:"level"`
	XpToNext    int              `json:"xpToNextLevel"`
	Streak      int              `json:"streak"`
	LessonsDone int              `json:"lessonsDone"`
}

// GetStudentDashboard aggregates the dashboard slices. Each slice
// degrades independently: a failing read logs and leaves its zero value
// so the rest of the page still renders.
func (s *DashboardService) GetStudentDashboard(studentID string) (*Dashboard, error) {
	dashboard := &Dashboard{StudentName: "Student", Grade: 11}

	if profile, err := s.UserRepo.FindStudentProfile(studentID); err != nil {
		logger.Log.Warn("dashboard: student profile unavailable", zap.String("student", studentID), zap.Error(err))
	} else {
		dashboard.StudentName = profile.FullName
		dashboard.Grade = profile.Grade
	}

	progressByLesson := make(map[string]model.StudentProgress)
	if rows, err := s.ProgressRepo.ListByStudent(studentID); err != nil {
		logger.Log.Warn("dashboard: progress unavailable", zap.String("student", studentID), zap.Error(err))
	} else {
		for _, row := range rows {
			progressByLesson[row.LessonID] = row
			if row.Status == model.ProgressCompleted {
				dashboard.LessonsDone++
			}
		}
	}

	if subjects, err := s.SubjectRepo.ListByGrade(dashboard.Grade); err != nil {
		logger.Log.Warn("dashboard: subjects unavailable", zap.Error(err))
	} else {
		for _, subject := range subjects {
			summary := SubjectSummary{Subject: subject}
			lessons, err := s.LessonRepo.ListBySubject(subject.ID)
			if err != nil {
				logger.Log.Warn("dashboard: lessons unavailable", zap.String("subject", subject.ID), zap.Error(err))
			}
			for _, lesson := range lessons {
				lwp := LessonWithProgress{Lesson: lesson, Status: model.ProgressLocked}
				if row, ok := progressByLesson[lesson.ID]; ok {
					lwp.Status = row.Status
					lwp.BestScore = row.BestScore
					if row.Status == model.ProgressCompleted {
						summary.Completed++
					}
				}
				summary.Lessons = append(summary.Lessons, lwp)
			}
			summary.LessonCount = len(summary.Lessons)
			dashboard.Subjects = append(dashboard.Subjects, summary)
		}
	}

	if total, err := s.XpRepo.TotalByStudent(studentID); err != nil {
		logger.Log.Warn("dashboard: xp total unavailable", zap.String("student", studentID), zap.Error(err))
	} else {
		dashboard.TotalXp = total
	}
	dashboard.Level = int(math.Floor(float64(dashboard.TotalXp)/1000)) + 1
	dashboard.XpToNext = dashboard.Level*1000 - dashboard.TotalXp

	if streak, err := s.Progress.StreakFor(studentID); err != nil {
		logger.Log.Warn("dashboard: streak unavailable", zap.String("student", studentID), zap.Error(err))
	} else {
		dashboard.Streak = streak
	}

	return dashboard, nil
}
