// Package query 把请求层的可选筛选参数翻译为存储查询条件。
// 所有字段都是可选的：缺失或无法识别的值不施加任何约束，多个条件之间取 AND。
package query

import (
	"strings"
	"time"

	"skill_tracker_backend/internal/model"

	"gorm.io/gorm"
)

// DefaultPageSize 列表页固定页大小
const DefaultPageSize = 20

// DateRange 日期范围关键字，相对"今天"解析为绝对日期边界
type DateRange string

const (
	RangeNone  DateRange = ""
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// ParseDateRange 识别关键字，未知值按无约束处理
func ParseDateRange(s string) DateRange {
	switch DateRange(s) {
	case RangeToday, RangeWeek, RangeMonth:
		return DateRange(s)
	}
	return RangeNone
}

// Bounds 解析为 [from, to] 日期区间，nil 表示该侧无界
func (r DateRange) Bounds(now time.Time) (from, to *time.Time) {
	today := model.DateOnly(now)
	switch r {
	case RangeToday:
		return &today, &today
	case RangeWeek:
		start := today.AddDate(0, 0, -7)
		return &start, nil
	case RangeMonth:
		start := today.AddDate(0, 0, -30)
		return &start, nil
	}
	return nil, nil
}

// Pagination 页码从 1 起算，非法值回退到第一页/默认页大小
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > DefaultPageSize {
		p.PageSize = DefaultPageSize
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Scope 应用分页到查询
func (p Pagination) Scope() func(*gorm.DB) *gorm.DB {
	n := p.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(n.Offset()).Limit(n.PageSize)
	}
}

// SearchPattern 大小写不敏感的子串匹配模式
func SearchPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// SkillFilter 技能列表筛选：搜索词对 name/description 做 OR 匹配，其余为精确匹配
type SkillFilter struct {
	Search     string
	Category   model.SkillCategory
	Difficulty model.SkillDifficulty
	Pagination
}

// Scope 返回技能列表的查询条件，固定按名称字母序
func (f SkillFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if strings.TrimSpace(f.Search) != "" {
			pattern := SearchPattern(f.Search)
			db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		if f.Category.Valid() {
			db = db.Where("category = ?", f.Category)
		}
		if f.Difficulty.Valid() {
			db = db.Where("difficulty = ?", f.Difficulty)
		}
		return db.Order("name")
	}
}

// ProgressFilter 练习记录筛选
type ProgressFilter struct {
	DateRange DateRange
	SkillID   uint
	Pagination
}

// Scope 返回练习记录的查询条件，固定按日期倒序（最新在前）
func (f ProgressFilter) Scope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		from, to := f.DateRange.Bounds(now)
		if from != nil {
			db = db.Where("date >= ?", *from)
		}
		if to != nil {
			db = db.Where("date <= ?", *to)
		}
		if f.SkillID != 0 {
			db = db.Where("skill_id = ?", f.SkillID)
		}
		return db.Order("date DESC")
	}
}

// GoalFilter 目标列表筛选
type GoalFilter struct {
	SkillID   uint
	Completed *bool
	Pagination
}

// Scope 返回目标列表的查询条件，按截止日期升序、创建时间倒序
func (f GoalFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.SkillID != 0 {
			db = db.Where("skill_id = ?", f.SkillID)
		}
		if f.Completed != nil {
			db = db.Where("completed = ?", *f.Completed)
		}
		return db.Order("deadline").Order("created_at DESC")
	}
}

// ResourceFilter 学习资源筛选
type ResourceFilter struct {
	SkillID      uint
	ResourceType model.ResourceType
	Completed    *bool
	Pagination
}

// Scope 返回资源列表的查询条件，按创建时间倒序
func (f ResourceFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.SkillID != 0 {
			db = db.Where("skill_id = ?", f.SkillID)
		}
		if f.ResourceType.Valid() {
			db = db.Where("resource_type = ?", f.ResourceType)
		}
		if f.Completed != nil {
			db = db.Where("is_completed = ?", *f.Completed)
		}
		return db.Order("created_at DESC")
	}
}
