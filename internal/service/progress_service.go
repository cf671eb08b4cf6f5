package service

import (
	"errors"
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/query"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/util"
	"skill_tracker_backend/pkg/monitoring"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProgressService 处理练习记录的业务逻辑

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	SkillRepo    *repository.SkillRepository
	Achievement  *AchievementService
	Chart        *ChartService
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	skillRepo *repository.SkillRepository,
	achievement *AchievementService,
	chart *ChartService,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		SkillRepo:    skillRepo,
		Achievement:  achievement,
		Chart:        chart,
	}
}

// CreateProgressRequest 记录练习的请求结构，日期为 YYYY-MM-DD
// HoursSpent 是指针：缺省和显式 0 要区分开，缺省视为校验失败
type CreateProgressRequest struct {
	SkillID     uint             `json:"skillId" binding:"required"`
	Date        string           `json:"date" binding:"required"`
	HoursSpent  *decimal.Decimal `json:"hoursSpent"`
	Description string           `json:"description" binding:"max=2000"`
}

// Create 记录一次练习。同一用户、技能、日期重复记录会被拒绝。
func (s *ProgressService) Create(userID uint, req CreateProgressRequest) (*model.ProgressEntry, error) {
	date, err := time.ParseInLocation(util.DateFormat, req.Date, time.Local)
	if err != nil {
		return nil, util.ErrInvalidDate
	}

	if req.HoursSpent == nil {
		return nil, util.ErrMissingHours
	}
	if req.HoursSpent.IsNegative() {
		return nil, util.ErrNegativeHours
	}

	if _, err := s.SkillRepo.FindByID(req.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	// 先查重给出友好错误，唯一索引兜底处理并发竞争
	exists, err := s.ProgressRepo.ExistsForDate(userID, req.SkillID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrDuplicateEntry
	}

	entry := &model.ProgressEntry{
		UserID:      userID,
		SkillID:     req.SkillID,
		Date:        model.DateOnly(date),
		HoursSpent:  req.HoursSpent.Round(2),
		Description: req.Description,
	}
	if err := s.ProgressRepo.Create(entry); err != nil {
		// 预检查之后并发写入撞上唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrDuplicateEntry
		}
		return nil, err
	}

	monitoring.ProgressEntriesLogged.Inc()
	s.Chart.InvalidateUser(userID)
	s.Achievement.HandleProgressLogged(userID, time.Now())

	return entry, nil
}

func (s *ProgressService) GetByID(userID, id uint) (*model.ProgressEntry, error) {
	entry, err := s.ProgressRepo.FindByIDAndUserID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	return entry, err
}

func (s *ProgressService) Delete(userID, id uint) error {
	if _, err := s.GetByID(userID, id); err != nil {
		return err
	}
	if err := s.ProgressRepo.Delete(id, userID); err != nil {
		return err
	}
	s.Chart.InvalidateUser(userID)
	return nil
}

func (s *ProgressService) List(userID uint, filter query.ProgressFilter, now time.Time) ([]model.ProgressEntry, int64, error) {
	return s.ProgressRepo.List(userID, filter, now)
}
