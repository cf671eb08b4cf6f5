package model

type ResourceType string

const (
	ResourceVideo         ResourceType = "video"
	ResourceArticle       ResourceType = "article"
	ResourceCourse        ResourceType = "course"
	ResourceDocumentation ResourceType = "documentation"
	ResourceBook          ResourceType = "book"
	ResourceOther         ResourceType = "other"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceVideo, ResourceArticle, ResourceCourse, ResourceDocumentation, ResourceBook, ResourceOther:
		return true
	}
	return false
}

// LearningResource 学习资源（外部链接），完成状态只有布尔标记，不记录完成日期
// swagger:model LearningResource
type LearningResource struct {
	BaseModel
	UserID       uint         `gorm:"index;not null" json:"userId"`
	SkillID      uint         `gorm:"index;not null" json:"skillId"`
	Skill        Skill        `gorm:"constraint:OnDelete:CASCADE" json:"skill,omitempty"`
	Title        string       `gorm:"size:200;not null" json:"title"`
	URL          string       `gorm:"size:255;not null" json:"url"`
	ResourceType ResourceType `gorm:"size:20;not null" json:"resourceType"`
	Notes        string       `gorm:"type:text" json:"notes"`
	IsCompleted  bool         `gorm:"default:false" json:"isCompleted"`
}

func (LearningResource) TableName() string {
	return "learning_resources"
}

// ToggleCompletion 翻转资源完成标记
func (r *LearningResource) ToggleCompletion() {
	r.IsCompleted = !r.IsCompleted
}
