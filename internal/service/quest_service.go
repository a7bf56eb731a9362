package service

import (
	"studyquest_backend/internal/repository"
)

type QuestService struct {
	XpRepo       *repository.XpRepository
	ProgressRepo *repository.ProgressRepository
	Progress     *ProgressService
}

func NewQuestService(xpRepo *repository.XpRepository, progressRepo *repository.ProgressRepository, progress *ProgressService) *QuestService {
	return &QuestService{XpRepo: xpRepo, ProgressRepo: progressRepo, Progress: progress}
}

// Quest progress is derived on read from the ledger, progress rows and
// the streak; nothing about quests is stored.
type Quest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Progress  int    `json:"progress"`
	Target    int    `json:"target"`
	Completed bool   `json:"completed"`
}

func (s *QuestService) GetQuests(studentID string) ([]Quest, error) {
	totalXp, err := s.XpRepo.TotalByStudent(studentID)
	if err != nil {
		return nil, err
	}
	completed, err := s.ProgressRepo.CountCompleted(studentID)
	if err != nil {
		return nil, err
	}
	streak, err := s.Progress.StreakFor(studentID)
	if err != nil {
		return nil, err
	}

	quests := []Quest{
		{ID: "first-lesson", Name: "First Lesson", Progress: int(completed), Target: 1},
		{ID: "streak-3", Name: "3-Day Streak", Progress: streak, Target: 3},
		{ID: "streak-7", Name: "Streak Master", Progress: streak, Target: 7},
		{ID: "xp-1000", Name: "XP Champion", Progress: totalXp, Target: 1000},
	}
	for i := range quests {
		if quests[i].Progress > quests[i].Target {
			quests[i].Progress = quests[i].Target
		}
		quests[i].Completed = quests[i].Progress >= quests[i].Target
	}
	return quests, nil
}
