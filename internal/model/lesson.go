package model

// Lesson is one ordered unit of content within a subject. OrderIndex is
// unique per subject and defines the unlock sequence.
type Lesson struct {
	UUIDBase

	SubjectID   string `gorm:"index:idx_subject_order,unique;type:varchar(36);not null" json:"subjectId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	OrderIndex  int    `gorm:"index:idx_subject_order,unique;not null" json:"orderIndex"`
	XpReward    int    `gorm:"default:10" json:"xpReward"`
	IsPublished bool   `gorm:"default:true" json:"isPublished"`
}

func (Lesson) TableName() string {
	return "lessons"
}
