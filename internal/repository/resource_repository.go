package repository

import (
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"

	"gorm.io/gorm"
)

// ResourceRepository 处理学习资源的数据访问

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) Create(resource *model.LearningResource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByIDAndUserID(id, userID uint) (*model.LearningResource, error) {
	var resource model.LearningResource
	err := r.DB.Preload("Skill").Where("id = ? AND user_id = ?", id, userID).First(&resource).Error
	return &resource, err
}

func (r *ResourceRepository) Update(resource *model.LearningResource) error {
	return r.DB.Model(&model.LearningResource{}).
		Where("id = ?", resource.ID).
		Updates(map[string]interface{}{
			"skill_id":      resource.SkillID,
			"title":         resource.Title,
			"url":           resource.URL,
			"resource_type": resource.ResourceType,
			"notes":         resource.Notes,
			"updated_at":    time.Now(),
		}).Error
}

// UpdateCompletion 单字段写入，翻转完成标记
func (r *ResourceRepository) UpdateCompletion(resource *model.LearningResource) error {
	return r.DB.Model(&model.LearningResource{}).
		Where("id = ? AND user_id = ?", resource.ID, resource.UserID).
		Updates(map[string]interface{}{
			"is_completed": resource.IsCompleted,
			"updated_at":   time.Now(),
		}).Error
}

func (r *ResourceRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.LearningResource{}).Error
}

// List 按筛选条件分页查询用户的学习资源
func (r *ResourceRepository) List(userID uint, filter query.ResourceFilter) ([]model.LearningResource, int64, error) {
	var resources []model.LearningResource
	var total int64

	if err := r.DB.Model(&model.LearningResource{}).
		Where("user_id = ?", userID).
		Scopes(filter.Scope()).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Preload("Skill").
		Where("user_id = ?", userID).
		Scopes(filter.Scope(), filter.Pagination.Scope()).
		Find(&resources).Error
	return resources, total, err
}

func (r *ResourceRepository) FindByUserAndSkill(userID, skillID uint) ([]model.LearningResource, error) {
	var resources []model.LearningResource
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}
