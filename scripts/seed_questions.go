// Imports a question bank JSON file into the database.
//
// The bank maps subject codes to lesson units:
//
//	{ "SCI": { "1": { "title": "...", "questions": [ { "prompt": "...",
//	  "explanation": "...", "options": [ { "label": "...", "correct": true } ] } ] } } }
//
// Lessons are created when missing; questions are appended. Run after the
// server has booted once so the subject catalog exists.
//
// Usage: go run scripts/seed_questions.go [bank.json]

package main

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sort"
	"strconv"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/pkg/database"
	"studyquest_backend/pkg/logger"

	"gorm.io/gorm"
)

type bankOption struct {
	Label   string `json:"label"`
	Correct bool   `json:"correct"`
}

type bankQuestion struct {
	Prompt      string       `json:"prompt"`
	Explanation string       `json:"explanation"`
	Options     []bankOption `json:"options"`
}

type bankUnit struct {
	Title     string         `json:"title"`
	Questions []bankQuestion `json:"questions"`
}

func main() {
	bankPath := "question_bank.json"
	if len(os.Args) > 1 {
		bankPath = os.Args[1]
	}

	data, err := os.ReadFile(bankPath)
	if err != nil {
		log.Fatalf("Failed to read question bank: %v", err)
	}

	var bank map[string]map[string]bankUnit
	if err := json.Unmarshal(data, &bank); err != nil {
		log.Fatalf("Failed to parse question bank: %v", err)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	subjects := repository.NewSubjectRepository(db)

	var lessons, questions int
	for code, units := range bank {
		subject, err := subjects.FindByCode(code)
		if err != nil {
			log.Printf("Subject %s not found, skipping", code)
			continue
		}

		orders := make([]string, 0, len(units))
		for ord := range units {
			orders = append(orders, ord)
		}
		sort.Strings(orders)

		for _, ord := range orders {
			unit := units[ord]
			orderIndex, err := strconv.Atoi(ord)
			if err != nil {
				log.Printf("Bad order index %q for subject %s, skipping unit", ord, code)
				continue
			}

			lesson, created, err := ensureLesson(db, subject.ID, orderIndex, unit.Title)
			if err != nil {
				log.Printf("Failed to ensure lesson %s/%d: %v", code, orderIndex, err)
				continue
			}
			if created {
				lessons++
			}

			for _, q := range unit.Questions {
				if err := insertQuestion(db, lesson.ID, q); err != nil {
					log.Printf("Failed to insert question %q: %v", q.Prompt, err)
					continue
				}
				questions++
			}
		}
	}

	log.Printf("Seeding complete: %d lessons created, %d questions inserted", lessons, questions)
}

func ensureLesson(db *gorm.DB, subjectID string, orderIndex int, title string) (*model.Lesson, bool, error) {
	var lesson model.Lesson
	err := db.Where("subject_id = ? AND order_index = ?", subjectID, orderIndex).First(&lesson).Error
	if err == nil {
		return &lesson, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	lesson = model.Lesson{
		SubjectID:   subjectID,
		Title:       title,
		OrderIndex:  orderIndex,
		XpReward:    10,
		IsPublished: true,
	}
	if err := db.Create(&lesson).Error; err != nil {
		return nil, false, err
	}
	return &lesson, true, nil
}

func insertQuestion(db *gorm.DB, lessonID string, q bankQuestion) error {
	return db.Transaction(func(tx *gorm.DB) error {
		question := model.Question{
			LessonID:    lessonID,
			Prompt:      q.Prompt,
			Explanation: q.Explanation,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for _, o := range q.Options {
			option := model.Option{
				QuestionID: question.ID,
				Label:      o.Label,
				IsCorrect:  o.Correct,
			}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
