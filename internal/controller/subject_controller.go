package controller

import (
	"errors"
	"strconv"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubjectController struct {
	SubjectRepo  *repository.SubjectRepository
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.ProgressRepository
}

func NewSubjectController(subjectRepo *repository.SubjectRepository, lessonRepo *repository.LessonRepository, progressRepo *repository.ProgressRepository) *SubjectController {
	return &SubjectController{SubjectRepo: subjectRepo, LessonRepo: lessonRepo, ProgressRepo: progressRepo}
}

// @Summary List subjects for a grade
// @Tags subjects
// @Security BearerAuth
// @Produce json
// @Param grade query int false "grade" default(11)
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	grade := 11
	if g := ctx.Query("grade"); g != "" {
		if v, err := strconv.Atoi(g); err == nil && v > 0 {
			grade = v
		}
	}

	subjects, err := c.SubjectRepo.ListByGrade(grade)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// @Summary Subject lesson path with the student's progress
// @Tags subjects
// @Security BearerAuth
// @Produce json
// @Param id path string true "subject ID"
// @Success 200 {object} util.Response
// @Router /api/subjects/{id} [get]
func (c *SubjectController) GetSubjectPath(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subject, err := c.SubjectRepo.FindByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	lessons, err := c.LessonRepo.ListBySubject(subject.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	rows, err := c.ProgressRepo.ListByStudent(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	progressByLesson := make(map[string]model.StudentProgress, len(rows))
	for _, row := range rows {
		progressByLesson[row.LessonID] = row
	}

	path := make([]service.LessonWithProgress, 0, len(lessons))
	for _, lesson := range lessons {
		lwp := service.LessonWithProgress{Lesson: lesson, Status: model.ProgressLocked}
		if row, ok := progressByLesson[lesson.ID]; ok {
			lwp.Status = row.Status
			lwp.BestScore = row.BestScore
		}
		path = append(path, lwp)
	}

	util.Success(ctx, gin.H{"subject": subject, "lessons": path})
}
