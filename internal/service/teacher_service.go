package service

import (
	"errors"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/util"

	"gorm.io/gorm"
)

type TeacherService struct {
	RosterRepo *repository.RosterRepository
	UserRepo   *repository.UserRepository
	XpRepo     *repository.XpRepository
}

func NewTeacherService(rosterRepo *repository.RosterRepository, userRepo *repository.UserRepository, xpRepo *repository.XpRepository) *TeacherService {
	return &TeacherService{RosterRepo: rosterRepo, UserRepo: userRepo, XpRepo: xpRepo}
}

type RosterEntry struct {
	StudentID string `json:"studentId"`
	FullName  string `json:"fullName"`
	Grade     int    `json:"grade"`
	Email     string `json:"email"`
	TotalXp   int    `json:"totalXp"`
}

// GetRoster returns the teacher's linked students with their XP totals.
// An empty roster is a valid state, not an error.
func (s *TeacherService) GetRoster(teacherID string) ([]RosterEntry, error) {
	ids, err := s.RosterRepo.ListStudentIDs(teacherID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []RosterEntry{}, nil
	}

	profiles, err := s.UserRepo.ListStudentProfiles(ids)
	if err != nil {
		return nil, err
	}
	profileByID := make(map[string]model.StudentProfile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	entries := make([]RosterEntry, 0, len(ids))
	for _, id := range ids {
		entry := RosterEntry{StudentID: id}
		if p, ok := profileByID[id]; ok {
			entry.FullName = p.FullName
			entry.Grade = p.Grade
		}
		if user, err := s.UserRepo.FindByID(id); err == nil {
			entry.Email = user.Email
		}
		total, err := s.XpRepo.TotalByStudent(id)
		if err != nil {
			return nil, err
		}
		entry.TotalXp = total
		entries = append(entries, entry)
	}
	return entries, nil
}

// LinkStudent adds a student to the teacher's roster by email.
func (s *TeacherService) LinkStudent(teacherID, studentEmail string) error {
	user, err := s.UserRepo.FindByEmail(studentEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrProfileNotFound
		}
		return err
	}
	if user.Role != model.Student {
		return util.ErrPermissionDenied
	}
	return s.RosterRepo.Link(teacherID, user.ID)
}
