package repository

import (
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"

	"gorm.io/gorm"
)

// SkillRepository 处理技能目录的数据访问

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.DB.Create(skill).Error
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.First(&skill, id).Error
	return &skill, err
}

func (r *SkillRepository) Update(skill *model.Skill) error {
	return r.DB.Model(&model.Skill{}).
		Where("id = ?", skill.ID).
		Updates(map[string]interface{}{
			"name":        skill.Name,
			"category":    skill.Category,
			"difficulty":  skill.Difficulty,
			"description": skill.Description,
			"updated_at":  time.Now(),
		}).Error
}

// Delete 删除技能并级联删除依赖它的练习记录、目标和资源
func (r *SkillRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", id).Delete(&model.ProgressEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("skill_id = ?", id).Delete(&model.Goal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("skill_id = ?", id).Delete(&model.LearningResource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Skill{}, id).Error
	})
}

// List 按筛选条件分页查询技能，返回当前页和总数
func (r *SkillRepository) List(filter query.SkillFilter) ([]model.Skill, int64, error) {
	var skills []model.Skill
	var total int64

	if err := r.DB.Model(&model.Skill{}).Scopes(filter.Scope()).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Scopes(filter.Scope(), filter.Pagination.Scope()).Find(&skills).Error
	return skills, total, err
}

func (r *SkillRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Skill{}).Count(&count).Error
	return count, err
}
