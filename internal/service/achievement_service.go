package service

import (
	"fmt"
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/stats"
	"skill_tracker_backend/pkg/logger"
	"skill_tracker_backend/pkg/monitoring"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AchievementService 在练习和目标写入后检查并授予成就。
// 同一档位的成就只授予一次，由 (user, type, required_value) 唯一索引兜底。

type AchievementService struct {
	AchievementRepo  *repository.AchievementRepository
	ProgressRepo     *repository.ProgressRepository
	GoalRepo         *repository.GoalRepository
	NotificationRepo *repository.NotificationRepository
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	progressRepo *repository.ProgressRepository,
	goalRepo *repository.GoalRepository,
	notificationRepo *repository.NotificationRepository,
) *AchievementService {
	return &AchievementService{
		AchievementRepo:  achievementRepo,
		ProgressRepo:     progressRepo,
		GoalRepo:         goalRepo,
		NotificationRepo: notificationRepo,
	}
}

var hoursMilestones = []int{10, 50, 100}

var goalMilestones = []int{1, 5, 10}

func (s *AchievementService) List(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUser(userID)
}

// HandleProgressLogged 练习记录写入后触发：首次记录、连续打卡、累计小时数三类成就
func (s *AchievementService) HandleProgressLogged(userID uint, now time.Time) {
	count, err := s.ProgressRepo.CountByUser(userID)
	if err != nil {
		logger.Log.Warn("Achievement check failed", zap.Error(err))
		return
	}

	if count == 1 {
		s.award(userID, model.AchievementFirstProgress, 1,
			"First Steps", "记录了第一条练习进度")
	}

	entries, err := s.ProgressRepo.FindByUserSince(userID, now.AddDate(-1, 0, 0))
	if err != nil {
		logger.Log.Warn("Achievement check failed", zap.Error(err))
		return
	}

	streak := stats.CurrentStreak(entries, now)
	if streak >= 7 {
		s.award(userID, model.AchievementWeekStreak, 7,
			"Week Streak", "连续 7 天坚持练习")
	}
	if streak >= 30 {
		s.award(userID, model.AchievementMonthStreak, 30,
			"Month Streak", "连续 30 天坚持练习")
	}

	totalHours, err := s.ProgressRepo.SumHoursByUser(userID)
	if err != nil {
		logger.Log.Warn("Achievement check failed", zap.Error(err))
		return
	}
	for _, milestone := range hoursMilestones {
		if totalHours.GreaterThanOrEqual(decimal.NewFromInt(int64(milestone))) {
			s.award(userID, model.AchievementHoursMilestone, milestone,
				fmt.Sprintf("%d Hours", milestone),
				fmt.Sprintf("累计练习达到 %d 小时", milestone))
		}
	}
}

// HandleGoalCompleted 目标完成后触发目标数成就
func (s *AchievementService) HandleGoalCompleted(userID uint) {
	completed, err := s.GoalRepo.CountByCompletion(userID, true)
	if err != nil {
		logger.Log.Warn("Achievement check failed", zap.Error(err))
		return
	}

	for _, milestone := range goalMilestones {
		if completed >= int64(milestone) {
			s.award(userID, model.AchievementGoalsCompleted, milestone,
				fmt.Sprintf("%d Goals Done", milestone),
				fmt.Sprintf("完成了 %d 个学习目标", milestone))
		}
	}
}

func (s *AchievementService) award(userID uint, kind model.AchievementType, required int, title, description string) {
	exists, err := s.AchievementRepo.Exists(userID, kind, required)
	if err != nil || exists {
		return
	}

	achievement := &model.Achievement{
		UserID:          userID,
		AchievementType: kind,
		Title:           title,
		Description:     description,
		RequiredValue:   required,
	}
	if err := s.AchievementRepo.Create(achievement); err != nil {
		logger.Log.Warn("Failed to award achievement", zap.Error(err))
		return
	}
	monitoring.AchievementsAwarded.WithLabelValues(string(kind)).Inc()

	// 成就同步发一条站内通知
	notification := &model.Notification{
		UserID:           userID,
		Title:            "Achievement Unlocked: " + title,
		Message:          description,
		NotificationType: model.NotificationAchievement,
	}
	if err := s.NotificationRepo.Create(notification); err != nil {
		logger.Log.Warn("Failed to create achievement notification", zap.Error(err))
	}
}
