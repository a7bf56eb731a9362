package controller

import (
	"errors"

	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TeacherController struct {
	TeacherService *service.TeacherService
}

func NewTeacherController(teacherService *service.TeacherService) *TeacherController {
	return &TeacherController{TeacherService: teacherService}
}

// @Summary Linked students with XP totals
// @Tags teacher
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/teacher/students [get]
func (c *TeacherController) GetRoster(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roster, err := c.TeacherService.GetRoster(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

type linkStudentRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Link a student to the teacher's roster
// @Tags teacher
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} util.Response
// @Router /api/teacher/students [post]
func (c *TeacherController) LinkStudent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req linkStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TeacherService.LinkStudent(user.UserID, req.Email); err != nil {
		switch {
		case errors.Is(err, util.ErrProfileNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.BadRequest(ctx, "user is not a student")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"linked": req.Email})
}
