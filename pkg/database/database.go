package database

import (
	"fmt"
	"log"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedSubjects(db)

	return db, nil
}

// Migrate runs AutoMigrate for every persistent entity. Shared with the
// seeding script and the test harness.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.TeacherProfile{},
		&model.TeacherStudent{},
		&model.Subject{},
		&model.Lesson{},
		&model.Question{},
		&model.Option{},
		&model.StudentProgress{},
		&model.XpLedgerEntry{},
		&model.DailyActivity{},
	)
}

// seedSubjects inserts the default grade-11 subject catalog on first boot.
func seedSubjects(db *gorm.DB) {
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []model.Subject{
		{Name: "Science", Code: "SCI", Grade: 11},
		{Name: "Mathematics", Code: "MAT", Grade: 11},
		{Name: "English", Code: "ENG", Grade: 11},
		{Name: "Social Science", Code: "SOC", Grade: 11},
		{Name: "Art", Code: "ART", Grade: 11},
	}
	for _, s := range defaults {
		db.Create(&s)
	}
}
