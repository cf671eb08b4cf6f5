package service

import (
	"errors"
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/stats"
	"skill_tracker_backend/internal/util"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserService 处理用户资料与个人汇总统计

type UserService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository
	GoalRepo     *repository.GoalRepository
}

func NewUserService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository, goalRepo *repository.GoalRepository) *UserService {
	return &UserService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		GoalRepo:     goalRepo,
	}
}

// UpdateProfileRequest 更新资料请求，零值字段也会写入（整体替换资料）
type UpdateProfileRequest struct {
	SkillLevel         model.SkillLevel `json:"skillLevel" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	Bio                string           `json:"bio" binding:"max=500"`
	Timezone           string           `json:"timezone" binding:"max=50"`
	DailyGoalHours     decimal.Decimal  `json:"dailyGoalHours"`
	EmailNotifications bool             `json:"emailNotifications"`
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*model.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.DailyGoalHours.IsNegative() {
		return nil, util.ErrNegativeHours
	}

	if req.SkillLevel != "" {
		user.SkillLevel = req.SkillLevel
	}
	user.Bio = req.Bio
	user.Timezone = req.Timezone
	if !req.DailyGoalHours.IsZero() {
		user.DailyGoalHours = req.DailyGoalHours
	}
	user.EmailNotifications = req.EmailNotifications

	if err := s.UserRepo.UpdateProfile(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ProfileSummary 个人页的汇总数字
type ProfileSummary struct {
	TotalHours     decimal.Decimal `json:"totalHours"`
	CompletedGoals int64           `json:"completedGoals"`
	CurrentStreak  int             `json:"currentStreak"`
	WeeklyHours    decimal.Decimal `json:"weeklyHours"`
	ProgressLevel  string          `json:"progressLevel"`
}

// GetProfileSummary 个人页的统计汇总，now 即"今天"的参照时间
func (s *UserService) GetProfileSummary(userID uint, now time.Time) (*ProfileSummary, error) {
	totalHours, err := s.ProgressRepo.SumHoursByUser(userID)
	if err != nil {
		return nil, err
	}

	completedGoals, err := s.GoalRepo.CountByCompletion(userID, true)
	if err != nil {
		return nil, err
	}

	// 连续打卡最多回溯一年，取一年窗口即可
	entries, err := s.ProgressRepo.FindByUserSince(userID, now.AddDate(-1, 0, 0))
	if err != nil {
		return nil, err
	}

	return &ProfileSummary{
		TotalHours:     totalHours,
		CompletedGoals: completedGoals,
		CurrentStreak:  stats.CurrentStreak(entries, now),
		WeeklyHours:    stats.WeeklyHours(entries, now),
		ProgressLevel:  stats.ProgressLevel(totalHours),
	}, nil
}
