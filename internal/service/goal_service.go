package service

import (
	"errors"
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/util"

	"gorm.io/gorm"
)

// GoalService 处理学习目标的业务逻辑

type GoalService struct {
	GoalRepo    *repository.GoalRepository
	SkillRepo   *repository.SkillRepository
	Achievement *AchievementService
}

func NewGoalService(goalRepo *repository.GoalRepository, skillRepo *repository.SkillRepository, achievement *AchievementService) *GoalService {
	return &GoalService{
		GoalRepo:    goalRepo,
		SkillRepo:   skillRepo,
		Achievement: achievement,
	}
}

// CreateGoalRequest 创建学习目标的请求结构，截止日期为 YYYY-MM-DD
type CreateGoalRequest struct {
	SkillID     uint   `json:"skillId" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Deadline    string `json:"deadline" binding:"required"`
}

func (s *GoalService) Create(userID uint, req CreateGoalRequest) (*model.Goal, error) {
	deadline, err := time.ParseInLocation(util.DateFormat, req.Deadline, time.Local)
	if err != nil {
		return nil, util.ErrInvalidDate
	}

	if _, err := s.SkillRepo.FindByID(req.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	goal := &model.Goal{
		UserID:      userID,
		SkillID:     req.SkillID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    model.DateOnly(deadline),
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) GetByID(userID, id uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return goal, err
}

func (s *GoalService) Update(userID, id uint, req CreateGoalRequest) (*model.Goal, error) {
	goal, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	deadline, err := time.ParseInLocation(util.DateFormat, req.Deadline, time.Local)
	if err != nil {
		return nil, util.ErrInvalidDate
	}

	goal.SkillID = req.SkillID
	goal.Title = req.Title
	goal.Description = req.Description
	goal.Deadline = model.DateOnly(deadline)

	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(userID, id uint) error {
	if _, err := s.GetByID(userID, id); err != nil {
		return err
	}
	return s.GoalRepo.Delete(id, userID)
}

// Toggle 翻转目标完成状态。completed 和 completed_date 在同一条 UPDATE 里落库，
// 不会出现已完成但没有完成日期的中间状态。
func (s *GoalService) Toggle(userID, id uint, now time.Time) (*model.Goal, error) {
	goal, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	goal.ToggleCompletion(now)
	if err := s.GoalRepo.UpdateCompletion(goal); err != nil {
		return nil, err
	}

	if goal.Completed {
		s.Achievement.HandleGoalCompleted(userID)
	}

	return goal, nil
}

func (s *GoalService) List(userID uint, filter query.GoalFilter) ([]model.Goal, int64, error) {
	return s.GoalRepo.List(userID, filter)
}
