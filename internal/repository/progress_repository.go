package repository

import (
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProgressRepository 处理练习记录的数据访问，聚合求和交给数据库完成

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(entry *model.ProgressEntry) error {
	return r.DB.Create(entry).Error
}

func (r *ProgressRepository) FindByIDAndUserID(id, userID uint) (*model.ProgressEntry, error) {
	var entry model.ProgressEntry
	err := r.DB.Preload("Skill").Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	return &entry, err
}

func (r *ProgressRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ProgressEntry{}).Error
}

// ExistsForDate 同一用户、技能、日期是否已有记录（重复录入校验）
func (r *ProgressRepository) ExistsForDate(userID, skillID uint, date time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ProgressEntry{}).
		Where("user_id = ? AND skill_id = ? AND date = ?", userID, skillID, model.DateOnly(date)).
		Count(&count).Error
	return count > 0, err
}

// List 按筛选条件分页查询用户的练习记录
func (r *ProgressRepository) List(userID uint, filter query.ProgressFilter, now time.Time) ([]model.ProgressEntry, int64, error) {
	var entries []model.ProgressEntry
	var total int64

	if err := r.DB.Model(&model.ProgressEntry{}).
		Where("user_id = ?", userID).
		Scopes(filter.Scope(now)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Skill").
		Where("user_id = ?", userID).
		Scopes(filter.Scope(now), filter.Pagination.Scope()).
		Find(&entries).Error
	return entries, total, err
}

// FindByUserSince 用户自 since（含当天）以来的所有记录，带技能关联
func (r *ProgressRepository) FindByUserSince(userID uint, since time.Time) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Preload("Skill").
		Where("user_id = ? AND date >= ?", userID, model.DateOnly(since)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// FindByUserBetween 用户在 [start, end]（均含）内的记录，带技能关联
func (r *ProgressRepository) FindByUserBetween(userID uint, start, end time.Time) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Preload("Skill").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, model.DateOnly(start), model.DateOnly(end)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ProgressRepository) FindByUserAndSkill(userID, skillID uint) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

// SumHoursByUser 用户累计练习小时数，空集返回 0
func (r *ProgressRepository) SumHoursByUser(userID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.DB.Model(&model.ProgressEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(hours_spent), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ProgressRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProgressEntry{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
