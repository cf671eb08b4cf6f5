package model

import "time"

// Goal 学习目标，带截止日期和完成状态
// Completed 与 CompletedDate 必须同步变化：完成时写入日期，取消完成时清空
// swagger:model Goal
type Goal struct {
	BaseModel
	UserID        uint       `gorm:"index;not null" json:"userId"`
	SkillID       uint       `gorm:"index;not null" json:"skillId"`
	Skill         Skill      `gorm:"constraint:OnDelete:CASCADE" json:"skill,omitempty"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	Deadline      time.Time  `gorm:"type:date;not null" json:"deadline"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	CompletedDate *time.Time `gorm:"type:date" json:"completedDate"`
}

func (Goal) TableName() string {
	return "goals"
}

// ToggleCompletion 翻转完成状态，并维护 CompletedDate 的协同不变式
func (g *Goal) ToggleCompletion(now time.Time) {
	g.Completed = !g.Completed
	if g.Completed {
		d := DateOnly(now)
		g.CompletedDate = &d
	} else {
		g.CompletedDate = nil
	}
}
