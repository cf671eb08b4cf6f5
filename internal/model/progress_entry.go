package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProgressEntry 一次练习记录
// (UserID, SkillID, Date) 采用唯一索引，同一天对同一技能只允许一条记录
// swagger:model ProgressEntry
type ProgressEntry struct {
	BaseModel
	UserID      uint            `gorm:"index:idx_user_skill_date,unique;not null" json:"userId"`
	SkillID     uint            `gorm:"index:idx_user_skill_date,unique;not null" json:"skillId"`
	Skill       Skill           `gorm:"constraint:OnDelete:CASCADE" json:"skill,omitempty"`
	Date        time.Time       `gorm:"type:date;index:idx_user_skill_date,unique;not null" json:"date"`
	HoursSpent  decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"hoursSpent"`
	Description string          `gorm:"type:text" json:"description"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}
