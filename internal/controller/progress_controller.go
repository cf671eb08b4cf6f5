package controller

import (
	"strconv"
	"time"

	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProgressController 处理练习记录的API请求

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 练习记录列表
// @Description 当前用户的练习记录，按日期倒序分页，可按日期范围和技能筛选
// @Tags 练习
// @Produce json
// @Security ApiKeyAuth
// @Param date_filter query string false "日期范围" enums(today,week,month)
// @Param skill query int false "技能ID"
// @Param page query int false "页码"
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := query.ProgressFilter{
		DateRange:  query.ParseDateRange(ctx.Query("date_filter")),
		SkillID:    util.MustParseUint(ctx.Query("skill")),
		Pagination: paginationFromQuery(ctx),
	}

	entries, total, err := c.ProgressService.List(user.UserID, filter, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	page := filter.Pagination.Normalize()
	util.Success(ctx, util.PageResponse{
		List:  entries,
		Total: total,
		Page:  page.Page,
		Limit: page.PageSize,
	})
}

// @Summary 记录练习
// @Description 记录一次练习，同一技能同一天只能记录一次
// @Tags 练习
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entry body service.CreateProgressRequest true "练习信息"
// @Success 201 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.ProgressService.Create(user.UserID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, entry)
}

// @Summary 练习记录详情
// @Tags 练习
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/progress/{id} [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid entry ID")
		return
	}

	entry, err := c.ProgressService.GetByID(user.UserID, uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, entry)
}

// @Summary 删除练习记录
// @Tags 练习
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/progress/{id} [delete]
func (c *ProgressController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid entry ID")
		return
	}

	if err := c.ProgressService.Delete(user.UserID, uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}
