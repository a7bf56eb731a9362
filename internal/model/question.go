package model

type Question struct {
	UUIDBase

	LessonID    string `gorm:"index;type:varchar(36);not null" json:"lessonId"`
	Prompt      string `gorm:"type:text;not null" json:"prompt"`
	Explanation string `gorm:"type:text" json:"explanation"`
}

func (Question) TableName() string {
	return "questions"
}

// Option is one selectable answer for a question. Exactly one option per
// question carries IsCorrect; the loader validates this at read time.
type Option struct {
	UUIDBase

	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Label      string `gorm:"type:text;not null" json:"label"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
}

func (Option) TableName() string {
	return "options"
}
