package model

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryMobile   SkillCategory = "mobile"
	CategoryData     SkillCategory = "data"
	CategoryDevOps   SkillCategory = "devops"
	CategoryDesign   SkillCategory = "design"
	CategoryOther    SkillCategory = "other"
)

type SkillDifficulty string

const (
	DifficultyEasy   SkillDifficulty = "easy"
	DifficultyMedium SkillDifficulty = "medium"
	DifficultyHard   SkillDifficulty = "hard"
)

// categoryLabels 分类的展示名称，图表和分布统计用的是展示名而非枚举值
var categoryLabels = map[SkillCategory]string{
	CategoryFrontend: "Frontend Development",
	CategoryBackend:  "Backend Development",
	CategoryMobile:   "Mobile Development",
	CategoryData:     "Data Science",
	CategoryDevOps:   "DevOps",
	CategoryDesign:   "Design",
	CategoryOther:    "Other",
}

// Label 返回分类的展示名，未知分类原样返回
func (c SkillCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid 校验分类是否为已知枚举值
func (c SkillCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (d SkillDifficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Skill 技能目录条目（全局共享，进度/目标/资源按用户关联到技能）
// swagger:model Skill
type Skill struct {
	BaseModel
	Name        string          `gorm:"size:100;not null" json:"name"`
	Category    SkillCategory   `gorm:"size:20;not null" json:"category"`
	Difficulty  SkillDifficulty `gorm:"size:10;not null" json:"difficulty"`
	Description string          `gorm:"type:text" json:"description"`
}

func (Skill) TableName() string {
	return "skills"
}
