package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// swagger:model User
type User struct {
	BaseModel
	Username           string          `gorm:"size:100;unique;not null" json:"username"`
	Email              string          `gorm:"size:100;unique;not null" json:"email"`
	Password           string          `gorm:"size:100;not null" json:"-"`
	SkillLevel         SkillLevel      `gorm:"size:20;default:'beginner'" json:"skillLevel"`
	Bio                string          `gorm:"size:500" json:"bio"`
	Timezone           string          `gorm:"size:50;default:'UTC'" json:"timezone"`
	DailyGoalHours     decimal.Decimal `gorm:"type:decimal(4,2);default:1.00" json:"dailyGoalHours"`
	EmailNotifications bool            `gorm:"default:true" json:"emailNotifications"`
	LastLogin          time.Time       `gorm:"autoCreateTime" json:"lastLogin"`
	LastSeen           time.Time       `gorm:"autoCreateTime" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
