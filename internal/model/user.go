package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
)

type User struct {
	UUIDBase

	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student'" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// StudentProfile carries onboarding data; its ID is the owning user's ID.
type StudentProfile struct {
	UUIDBase

	FullName string `gorm:"size:255" json:"fullName"`
	Grade    int    `gorm:"index;default:11" json:"grade"`
	Section  string `gorm:"size:50" json:"section"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

type TeacherProfile struct {
	UUIDBase

	FullName string `gorm:"size:255" json:"fullName"`
	School   string `gorm:"size:255" json:"school"`
}

func (TeacherProfile) TableName() string {
	return "teacher_profiles"
}

// TeacherStudent links a teacher to a student on their roster.
type TeacherStudent struct {
	UUIDBase

	TeacherID string `gorm:"index:idx_teacher_student,unique;type:varchar(36);not null" json:"teacherId"`
	StudentID string `gorm:"index:idx_teacher_student,unique;type:varchar(36);not null" json:"studentId"`
}

func (TeacherStudent) TableName() string {
	return "teacher_students"
}
