package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RosterRepository struct {
	DB *gorm.DB
}

func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{DB: db}
}

func (r *RosterRepository) Link(teacherID, studentID string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "teacher_id"}, {Name: "student_id"}},
		DoNothing: true,
	}).Create(&model.TeacherStudent{TeacherID: teacherID, StudentID: studentID}).Error
}

func (r *RosterRepository) ListStudentIDs(teacherID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.TeacherStudent{}).
		Where("teacher_id = ?", teacherID).
		Pluck("student_id", &ids).Error
	return ids, err
}
