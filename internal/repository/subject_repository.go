package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) FindByID(id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) FindByCode(code string) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Where("code = ?", code).First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) ListByGrade(grade int) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("grade = ?", grade).Order("name").Find(&subjects).Error
	return subjects, err
}
