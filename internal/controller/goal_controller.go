package controller

import (
	"strconv"
	"time"

	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalController 处理学习目标的API请求

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// @Summary 目标列表
// @Description 当前用户的学习目标，按截止日期升序、创建时间倒序分页
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param skill query int false "技能ID"
// @Param completed query bool false "完成状态"
// @Param page query int false "页码"
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := query.GoalFilter{
		SkillID:    util.MustParseUint(ctx.Query("skill")),
		Completed:  parseBoolFilter(ctx.Query("completed")),
		Pagination: paginationFromQuery(ctx),
	}

	goals, total, err := c.GoalService.List(user.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	page := filter.Pagination.Normalize()
	util.Success(ctx, util.PageResponse{
		List:  goals,
		Total: total,
		Page:  page.Page,
		Limit: page.PageSize,
	})
}

// @Summary 创建目标
// @Tags 目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param goal body service.CreateGoalRequest true "目标信息"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Create(user.UserID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// @Summary 目标详情
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [get]
func (c *GoalController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	goal, err := c.GoalService.GetByID(user.UserID, uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 更新目标
// @Tags 目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Param goal body service.CreateGoalRequest true "目标信息"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [put]
func (c *GoalController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Update(user.UserID, uint(id), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 删除目标
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *GoalController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	if err := c.GoalService.Delete(user.UserID, uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 切换目标完成状态
// @Description 翻转完成标记：完成时写入完成日期，取消完成时清空
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id}/toggle [post]
func (c *GoalController) Toggle(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid goal ID")
		return
	}

	goal, err := c.GoalService.Toggle(user.UserID, uint(id), time.Now())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// parseBoolFilter 解析可选布尔参数，无法识别的值按未提供处理
func parseBoolFilter(s string) *bool {
	switch s {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
