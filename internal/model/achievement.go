package model

import "time"

type AchievementType string

const (
	AchievementFirstProgress  AchievementType = "first_progress"
	AchievementWeekStreak     AchievementType = "week_streak"
	AchievementMonthStreak    AchievementType = "month_streak"
	AchievementHoursMilestone AchievementType = "hours_milestone"
	AchievementGoalsCompleted AchievementType = "goals_completed"
)

// Achievement 成就记录
// (UserID, AchievementType, RequiredValue) 唯一，保证同一档位的成就只授予一次
// swagger:model Achievement
type Achievement struct {
	BaseModel
	UserID          uint            `gorm:"index:idx_user_achievement,unique;not null" json:"userId"`
	AchievementType AchievementType `gorm:"size:30;index:idx_user_achievement,unique;not null" json:"achievementType"`
	Title           string          `gorm:"size:200;not null" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Icon            string          `gorm:"size:50;default:'fas fa-trophy'" json:"icon"`
	RequiredValue   int             `gorm:"default:1;index:idx_user_achievement,unique" json:"requiredValue"`
	EarnedAt        time.Time       `gorm:"autoCreateTime" json:"earnedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}
