package model

type Subject struct {
	UUIDBase

	Name  string `gorm:"size:255;not null" json:"name"`
	Code  string `gorm:"size:20;index" json:"code"`
	Grade int    `gorm:"index;not null" json:"grade"`
}

func (Subject) TableName() string {
	return "subjects"
}
