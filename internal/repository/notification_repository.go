package repository

import (
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

// List 用户通知，按创建时间倒序分页
func (r *NotificationRepository) List(userID uint, page query.Pagination) ([]model.Notification, int64, error) {
	var notifications []model.Notification
	var total int64

	if err := r.DB.Model(&model.Notification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(page.Scope()).
		Find(&notifications).Error
	return notifications, total, err
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(id, userID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// ExistsForGoalSince 某目标在 since 之后是否已发过同类通知（避免重复提醒）
func (r *NotificationRepository) ExistsForGoalSince(userID, goalID uint, kind model.NotificationType, since time.Time) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND related_goal_id = ? AND notification_type = ? AND created_at >= ?", userID, goalID, kind, since).
		Count(&count).Error
	return count > 0, err
}
