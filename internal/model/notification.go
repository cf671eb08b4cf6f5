package model

type NotificationType string

const (
	NotificationGoalDeadline NotificationType = "goal_deadline"
	NotificationAchievement  NotificationType = "achievement"
	NotificationMilestone    NotificationType = "milestone"
	NotificationReminder     NotificationType = "reminder"
)

// Notification 站内通知
// swagger:model Notification
type Notification struct {
	BaseModel
	UserID           uint             `gorm:"index;not null" json:"userId"`
	Title            string           `gorm:"size:200;not null" json:"title"`
	Message          string           `gorm:"type:text" json:"message"`
	NotificationType NotificationType `gorm:"size:30;not null" json:"notificationType"`
	IsRead           bool             `gorm:"default:false" json:"isRead"`
	RelatedGoalID    *uint            `gorm:"index" json:"relatedGoalId,omitempty"`
	RelatedSkillID   *uint            `gorm:"index" json:"relatedSkillId,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
