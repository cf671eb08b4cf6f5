package service

import (
	"errors"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/stats"
	"skill_tracker_backend/internal/util"

	"gorm.io/gorm"
)

// SkillService 处理技能目录的业务逻辑和单技能统计

type SkillService struct {
	SkillRepo    *repository.SkillRepository
	ProgressRepo *repository.ProgressRepository
	GoalRepo     *repository.GoalRepository
	ResourceRepo *repository.ResourceRepository
}

func NewSkillService(
	skillRepo *repository.SkillRepository,
	progressRepo *repository.ProgressRepository,
	goalRepo *repository.GoalRepository,
	resourceRepo *repository.ResourceRepository,
) *SkillService {
	return &SkillService{
		SkillRepo:    skillRepo,
		ProgressRepo: progressRepo,
		GoalRepo:     goalRepo,
		ResourceRepo: resourceRepo,
	}
}

// CreateSkillRequest 创建技能的请求结构
type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,oneof=frontend backend mobile data devops design other"`
	Difficulty  string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Description string `json:"description" binding:"max=2000"`
}

func (s *SkillService) Create(req CreateSkillRequest) (*model.Skill, error) {
	skill := &model.Skill{
		Name:        req.Name,
		Category:    model.SkillCategory(req.Category),
		Difficulty:  model.SkillDifficulty(req.Difficulty),
		Description: req.Description,
	}
	if err := s.SkillRepo.Create(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) GetByID(id uint) (*model.Skill, error) {
	skill, err := s.SkillRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return skill, err
}

func (s *SkillService) Update(id uint, req CreateSkillRequest) (*model.Skill, error) {
	skill, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	skill.Name = req.Name
	skill.Category = model.SkillCategory(req.Category)
	skill.Difficulty = model.SkillDifficulty(req.Difficulty)
	skill.Description = req.Description

	if err := s.SkillRepo.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// Delete 删除技能，依赖它的练习记录、目标和资源一并级联删除
func (s *SkillService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.SkillRepo.Delete(id)
}

func (s *SkillService) List(filter query.SkillFilter) ([]model.Skill, int64, error) {
	return s.SkillRepo.List(filter)
}

// GetSkillStats 单个技能的聚合统计，技能不存在时返回 NotFound
func (s *SkillService) GetSkillStats(userID, skillID uint) (*stats.SkillStatistics, error) {
	skill, err := s.GetByID(skillID)
	if err != nil {
		return nil, err
	}

	entries, err := s.ProgressRepo.FindByUserAndSkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	goals, err := s.GoalRepo.FindByUserAndSkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	resources, err := s.ResourceRepo.FindByUserAndSkill(userID, skillID)
	if err != nil {
		return nil, err
	}

	result := stats.BuildSkillStatistics(skill, entries, goals, resources)
	return &result, nil
}
