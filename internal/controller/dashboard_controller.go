package controller

import (
	"strconv"
	"time"

	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardController 仪表盘和图表数据接口

type DashboardController struct {
	DashboardService *service.DashboardService
	ChartService     *service.ChartService
}

func NewDashboardController(dashboardService *service.DashboardService, chartService *service.ChartService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		ChartService:     chartService,
	}
}

// @Summary 仪表盘
// @Description 当前用户的仪表盘：计数、累计小时、连续打卡、最近练习、即将到期目标、分类分布、14天序列
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(user.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// @Summary 图表数据
// @Description 最近 N 天的逐日小时数和分类分布，N 默认 30，最小 1
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "回看天数" default(30)
// @Success 200 {object} util.Response
// @Router /api/dashboard/charts [get]
func (c *DashboardController) GetChartData(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	days, err := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	if err != nil {
		util.BadRequest(ctx, "Invalid days parameter")
		return
	}

	data, err := c.ChartService.GetChartData(user.UserID, days, time.Now())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, data)
}
