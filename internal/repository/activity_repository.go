package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Upsert records activity for (student, day). Conflicts on the unique key
// are ignored, so marking the same day twice leaves a single row.
func (r *ActivityRepository) Upsert(studentID, dayKey string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "activity_date"}},
		DoNothing: true,
	}).Create(&model.DailyActivity{StudentID: studentID, ActivityDate: dayKey}).Error
}

// ListDates returns the distinct activity day keys for a student.
func (r *ActivityRepository) ListDates(studentID string) (map[string]bool, error) {
	var rows []model.DailyActivity
	err := r.DB.Where("student_id = ?", studentID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	days := make(map[string]bool, len(rows))
	for _, row := range rows {
		days[row.ActivityDate] = true
	}
	return days, nil
}
