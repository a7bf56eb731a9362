package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
)

type XpRepository struct {
	DB *gorm.DB
}

func NewXpRepository(db *gorm.DB) *XpRepository {
	return &XpRepository{DB: db}
}

// Append adds one ledger entry. The ledger is append-only; there is no
// update or delete path.
func (r *XpRepository) Append(entry *model.XpLedgerEntry) error {
	return r.DB.Create(entry).Error
}

func (r *XpRepository) TotalByStudent(studentID string) (int, error) {
	var total int64
	err := r.DB.Model(&model.XpLedgerEntry{}).
		Where("student_id = ?", studentID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return int(total), err
}

type StudentXpTotal struct {
	StudentID string `json:"studentId"`
	TotalXp   int    `json:"totalXp"`
}

// Totals sums the ledger per student, highest first.
func (r *XpRepository) Totals() ([]StudentXpTotal, error) {
	var totals []StudentXpTotal
	err := r.DB.Model(&model.XpLedgerEntry{}).
		Select("student_id, COALESCE(SUM(amount), 0) AS total_xp").
		Group("student_id").
		Order("total_xp DESC").
		Scan(&totals).Error
	return totals, err
}
