package controller

import (
	"errors"

	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"
	"studyquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// @Summary Lesson content with questions and options
// @Tags lessons
// @Security BearerAuth
// @Produce json
// @Param id path string true "lesson ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	content, err := c.LessonService.GetLessonContent(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, content)
}

type checkRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

// @Summary Check one answer (immediate feedback, no reward writes)
// @Tags lessons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "lesson ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/check [post]
func (c *LessonController) CheckAnswer(ctx *gin.Context) {
	var req checkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	check, err := c.LessonService.CheckAnswer(ctx.Param("id"), req.QuestionID, req.OptionID)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) || errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, check)
}

type submitRequest struct {
	Answers []service.AnswerSubmission `json:"answers" binding:"required"`
}

// @Summary Submit a completed lesson attempt
// @Tags lessons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "lesson ID"
// @Success 200 {object} util.Response
// @Router /api/lessons/{id}/submit [post]
func (c *LessonController) SubmitLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req submitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LessonService.SubmitLesson(user.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		monitoring.LessonSubmissions.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrUnauthenticated):
			util.Unauthorized(ctx)
		case errors.Is(err, util.ErrNoQuestions), errors.Is(err, util.ErrSessionIncomplete):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.LessonSubmissions.WithLabelValues("ok").Inc()
	util.Success(ctx, result)
}
