package service

import (
	"fmt"
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/pkg/logger"

	"go.uber.org/zap"
)

// NotificationService 站内通知：列表、已读标记和截止日期提醒扫描

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
	GoalRepo         *repository.GoalRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository, goalRepo *repository.GoalRepository) *NotificationService {
	return &NotificationService{
		NotificationRepo: notificationRepo,
		GoalRepo:         goalRepo,
	}
}

// deadlineNoticeDays 截止前几天开始提醒
const deadlineNoticeDays = 3

func (s *NotificationService) List(userID uint, page query.Pagination) ([]model.Notification, int64, error) {
	return s.NotificationRepo.List(userID, page)
}

func (s *NotificationService) CountUnread(userID uint) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	return s.NotificationRepo.MarkRead(id, userID)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.NotificationRepo.MarkAllRead(userID)
}

// SweepDeadlines 扫描即将到期的未完成目标并生成提醒，同一目标一周内不重复提醒。
// 由后台定时任务调用。
func (s *NotificationService) SweepDeadlines(now time.Time) error {
	goals, err := s.GoalRepo.FindDueWithin(now, deadlineNoticeDays)
	if err != nil {
		return err
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, goal := range goals {
		exists, err := s.NotificationRepo.ExistsForGoalSince(goal.UserID, goal.ID, model.NotificationGoalDeadline, weekAgo)
		if err != nil || exists {
			continue
		}

		goalID := goal.ID
		skillID := goal.SkillID
		notification := &model.Notification{
			UserID:           goal.UserID,
			Title:            "Goal Deadline Approaching",
			Message:          fmt.Sprintf("目标 %q 将于 %s 到期", goal.Title, goal.Deadline.Format("2006-01-02")),
			NotificationType: model.NotificationGoalDeadline,
			RelatedGoalID:    &goalID,
			RelatedSkillID:   &skillID,
		}
		if err := s.NotificationRepo.Create(notification); err != nil {
			logger.Log.Warn("Failed to create deadline notification", zap.Error(err))
		}
	}
	return nil
}
