package controller

import (
	"strconv"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ResourceController 处理学习资源的API请求

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// @Summary 资源列表
// @Description 当前用户收藏的学习资源，按创建时间倒序分页
// @Tags 资源
// @Produce json
// @Security ApiKeyAuth
// @Param skill query int false "技能ID"
// @Param type query string false "资源类型" enums(video,article,course,documentation,book,other)
// @Param completed query bool false "完成状态"
// @Param page query int false "页码"
// @Success 200 {object} util.Response
// @Router /api/resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	filter := query.ResourceFilter{
		SkillID:      util.MustParseUint(ctx.Query("skill")),
		ResourceType: model.ResourceType(ctx.Query("type")),
		Completed:    parseBoolFilter(ctx.Query("completed")),
		Pagination:   paginationFromQuery(ctx),
	}

	resources, total, err := c.ResourceService.List(user.UserID, filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	page := filter.Pagination.Normalize()
	util.Success(ctx, util.PageResponse{
		List:  resources,
		Total: total,
		Page:  page.Page,
		Limit: page.PageSize,
	})
}

// @Summary 收藏资源
// @Tags 资源
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resource body service.CreateResourceRequest true "资源信息"
// @Success 201 {object} util.Response
// @Router /api/resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ResourceService.Create(user.UserID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, resource)
}

// @Summary 资源详情
// @Tags 资源
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Success 200 {object} util.Response
// @Router /api/resources/{id} [get]
func (c *ResourceController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid resource ID")
		return
	}

	resource, err := c.ResourceService.GetByID(user.UserID, uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}

// @Summary 更新资源
// @Tags 资源
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Param resource body service.CreateResourceRequest true "资源信息"
// @Success 200 {object} util.Response
// @Router /api/resources/{id} [put]
func (c *ResourceController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid resource ID")
		return
	}

	var req service.CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ResourceService.Update(user.UserID, uint(id), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}

// @Summary 删除资源
// @Tags 资源
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Success 200 {object} util.Response
// @Router /api/resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid resource ID")
		return
	}

	if err := c.ResourceService.Delete(user.UserID, uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 切换资源完成状态
// @Tags 资源
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Success 200 {object} util.Response
// @Router /api/resources/{id}/toggle [post]
func (c *ResourceController) Toggle(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid resource ID")
		return
	}

	resource, err := c.ResourceService.Toggle(user.UserID, uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}
