package repository

import (
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"

	"gorm.io/gorm"
)

// GoalRepository 处理学习目标的数据访问

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.Preload("Skill").Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	return &goal, err
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"skill_id":    goal.SkillID,
			"title":       goal.Title,
			"description": goal.Description,
			"deadline":    goal.Deadline,
			"updated_at":  time.Now(),
		}).Error
}

// UpdateCompletion 一次写入同时落 completed 和 completed_date，保证两个字段的协同不变式
func (r *GoalRepository) UpdateCompletion(goal *model.Goal) error {
	return r.DB.Model(&model.Goal{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]interface{}{
			"completed":      goal.Completed,
			"completed_date": goal.CompletedDate,
			"updated_at":     time.Now(),
		}).Error
}

func (r *GoalRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Goal{}).Error
}

// List 按筛选条件分页查询用户的目标
func (r *GoalRepository) List(userID uint, filter query.GoalFilter) ([]model.Goal, int64, error) {
	var goals []model.Goal
	var total int64

	if err := r.DB.Model(&model.Goal{}).
		Where("user_id = ?", userID).
		Scopes(filter.Scope()).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Skill").
		Where("user_id = ?", userID).
		Scopes(filter.Scope(), filter.Pagination.Scope()).
		Find(&goals).Error
	return goals, total, err
}

// FindUpcoming 未完成且截止日期不早于 today 的目标，按截止日期升序
func (r *GoalRepository) FindUpcoming(userID uint, today time.Time, limit int) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Preload("Skill").
		Where("user_id = ? AND completed = ? AND deadline >= ?", userID, false, model.DateOnly(today)).
		Order("deadline").
		Limit(limit).
		Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindByUserAndSkill(userID, skillID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("deadline").
		Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) CountByCompletion(userID uint, completed bool) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Goal{}).
		Where("user_id = ? AND completed = ?", userID, completed).
		Count(&count).Error
	return count, err
}

// FindDueWithin 未完成且将在 [today, today+days] 内到期的目标（截止提醒用）
func (r *GoalRepository) FindDueWithin(today time.Time, days int) ([]model.Goal, error) {
	var goals []model.Goal
	start := model.DateOnly(today)
	end := start.AddDate(0, 0, days)
	err := r.DB.Where("completed = ? AND deadline >= ? AND deadline <= ?", false, start, end).
		Find(&goals).Error
	return goals, err
}
