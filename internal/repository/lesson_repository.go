package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByID(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) ListBySubject(subjectID string) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("subject_id = ?", subjectID).Order("order_index").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) ListQuestions(lessonID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("lesson_id = ?", lessonID).Order("created_at").Find(&questions).Error
	return questions, err
}

func (r *LessonRepository) ListOptions(questionIDs []string) ([]model.Option, error) {
	var options []model.Option
	if len(questionIDs) == 0 {
		return options, nil
	}
	err := r.DB.Where("question_id IN ?", questionIDs).Find(&options).Error
	return options, err
}
