package controller

import (
	"studyquest_backend/internal/service"
	"studyquest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	QuestService     *service.QuestService
}

func NewDashboardController(dashboardService *service.DashboardService, questService *service.QuestService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, QuestService: questService}
}

// @Summary Student dashboard aggregate
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetStudentDashboard(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}

// @Summary Quest progress for the current student
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quests [get]
func (c *DashboardController) GetQuests(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	quests, err := c.QuestService.GetQuests(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quests)
}
