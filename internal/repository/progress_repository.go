package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) ListByStudent(studentID string) ([]model.StudentProgress, error) {
	var rows []model.StudentProgress
	err := r.DB.Where("student_id = ?", studentID).Find(&rows).Error
	return rows, err
}

// CreateIfAbsent inserts a progress row unless one already exists for the
// (student, lesson) key. Used by onboarding seeding.
func (r *ProgressRepository) CreateIfAbsent(row *model.StudentProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(row).Error
}

func (r *ProgressRepository) CountCompleted(studentID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentProgress{}).
		Where("student_id = ? AND status = ?", studentID, model.ProgressCompleted).
		Count(&count).Error
	return count, err
}
