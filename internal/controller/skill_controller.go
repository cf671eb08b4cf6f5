package controller

import (
	"strconv"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/service"
	"skill_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SkillController 处理技能目录的API请求

type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

// @Summary 技能列表
// @Description 按搜索词/分类/难度筛选技能，按名称排序分页
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "搜索词（匹配名称或描述）"
// @Param category query string false "分类" enums(frontend,backend,mobile,data,devops,design,other)
// @Param difficulty query string false "难度" enums(easy,medium,hard)
// @Param page query int false "页码"
// @Success 200 {object} util.Response
// @Router /api/skills [get]
func (c *SkillController) List(ctx *gin.Context) {
	filter := query.SkillFilter{
		Search:     ctx.Query("search"),
		Category:   model.SkillCategory(ctx.Query("category")),
		Difficulty: model.SkillDifficulty(ctx.Query("difficulty")),
		Pagination: paginationFromQuery(ctx),
	}

	skills, total, err := c.SkillService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	page := filter.Pagination.Normalize()
	util.Success(ctx, util.PageResponse{
		List:  skills,
		Total: total,
		Page:  page.Page,
		Limit: page.PageSize,
	})
}

// @Summary 创建技能
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param skill body service.CreateSkillRequest true "技能信息"
// @Success 201 {object} util.Response
// @Router /api/skills [post]
func (c *SkillController) Create(ctx *gin.Context) {
	var req service.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.SkillService.Create(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, skill)
}

// @Summary 技能详情
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response
// @Router /api/skills/{id} [get]
func (c *SkillController) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid skill ID")
		return
	}

	skill, err := c.SkillService.GetByID(uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// @Summary 更新技能
// @Tags 技能
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能ID"
// @Param skill body service.CreateSkillRequest true "技能信息"
// @Success 200 {object} util.Response
// @Router /api/skills/{id} [put]
func (c *SkillController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid skill ID")
		return
	}

	var req service.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill, err := c.SkillService.Update(uint(id), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, skill)
}

// @Summary 删除技能
// @Description 删除技能并级联删除其下的练习记录、目标和资源
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response
// @Router /api/skills/{id} [delete]
func (c *SkillController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid skill ID")
		return
	}

	if err := c.SkillService.Delete(uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 技能统计
// @Description 单个技能的聚合统计：总小时、练习次数、场均小时、目标/资源完成度、最近练习
// @Tags 技能
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "技能ID"
// @Success 200 {object} util.Response
// @Router /api/skills/{id}/stats [get]
func (c *SkillController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid skill ID")
		return
	}

	result, err := c.SkillService.GetSkillStats(user.UserID, uint(id))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// paginationFromQuery 从请求参数解析页码，页大小固定
func paginationFromQuery(ctx *gin.Context) query.Pagination {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	return query.Pagination{Page: page, PageSize: query.DefaultPageSize}
}
