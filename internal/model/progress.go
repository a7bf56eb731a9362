package model

import "time"

type ProgressStatus string

const (
	ProgressLocked    ProgressStatus = "locked"
	ProgressUnlocked  ProgressStatus = "unlocked"
	ProgressCompleted ProgressStatus = "completed"
)

// StudentProgress is the persistent per-(student, lesson) record that
// drives what the lesson path renders as clickable.
type StudentProgress struct {
	UUIDBase

	StudentID     string         `gorm:"index:idx_student_lesson,unique;type:varchar(36);not null" json:"studentId"`
	LessonID      string         `gorm:"index:idx_student_lesson,unique;type:varchar(36);not null" json:"lessonId"`
	Status        ProgressStatus `gorm:"size:20;default:'locked'" json:"status"`
	BestScore     *int           `json:"bestScore"`
	LastAttemptAt *time.Time     `json:"lastAttemptAt,omitempty"`
}

func (StudentProgress) TableName() string {
	return "student_progress"
}
