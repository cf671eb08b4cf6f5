package service

import (
	"errors"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/util"

	"gorm.io/gorm"
)

// ResourceService 处理学习资源的业务逻辑

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	SkillRepo    *repository.SkillRepository
}

func NewResourceService(resourceRepo *repository.ResourceRepository, skillRepo *repository.SkillRepository) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		SkillRepo:    skillRepo,
	}
}

// CreateResourceRequest 收藏学习资源的请求结构
type CreateResourceRequest struct {
	SkillID      uint   `json:"skillId" binding:"required"`
	Title        string `json:"title" binding:"required,max=200"`
	URL          string `json:"url" binding:"required,url,max=255"`
	ResourceType string `json:"resourceType" binding:"required,oneof=video article course documentation book other"`
	Notes        string `json:"notes" binding:"max=2000"`
}

func (s *ResourceService) Create(userID uint, req CreateResourceRequest) (*model.LearningResource, error) {
	if _, err := s.SkillRepo.FindByID(req.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	resource := &model.LearningResource{
		UserID:       userID,
		SkillID:      req.SkillID,
		Title:        req.Title,
		URL:          req.URL,
		ResourceType: model.ResourceType(req.ResourceType),
		Notes:        req.Notes,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) GetByID(userID, id uint) (*model.LearningResource, error) {
	resource, err := s.ResourceRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return resource, err
}

func (s *ResourceService) Update(userID, id uint, req CreateResourceRequest) (*model.LearningResource, error) {
	resource, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	resource.SkillID = req.SkillID
	resource.Title = req.Title
	resource.URL = req.URL
	resource.ResourceType = model.ResourceType(req.ResourceType)
	resource.Notes = req.Notes

	if err := s.ResourceRepo.Update(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) Delete(userID, id uint) error {
	if _, err := s.GetByID(userID, id); err != nil {
		return err
	}
	return s.ResourceRepo.Delete(id, userID)
}

// Toggle 翻转资源完成标记（资源不记录完成日期）
func (s *ResourceService) Toggle(userID, id uint) (*model.LearningResource, error) {
	resource, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	resource.ToggleCompletion()
	if err := s.ResourceRepo.UpdateCompletion(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *ResourceService) List(userID uint, filter query.ResourceFilter) ([]model.LearningResource, int64, error) {
	return s.ResourceRepo.List(userID, filter)
}
