package model

// DailyActivity records that a student did something that counts toward
// the streak on a calendar date. ActivityDate is a 2006-01-02 day key;
// the unique index gives the upsert its conflict target.
type DailyActivity struct {
	UUIDBase

	StudentID    string `gorm:"index:idx_student_date,unique;type:varchar(36);not null" json:"studentId"`
	ActivityDate string `gorm:"index:idx_student_date,unique;size:10;not null" json:"activityDate"`
}

func (DailyActivity) TableName() string {
	return "daily_activity"
}
