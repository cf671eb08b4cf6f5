package service

import (
	"errors"
	"testing"
	"time"

	"skill_tracker_backend/internal/config"
	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/util"
	"skill_tracker_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB 打开内存 SQLite 并迁移全部表
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.ProgressEntry{},
		&model.Goal{},
		&model.LearningResource{},
		&model.Notification{},
		&model.Achievement{},
	))

	return db
}

func newTestProgressService(t *testing.T, db *gorm.DB) *ProgressService {
	t.Helper()

	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	progressRepo := repository.NewProgressRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// 指向不存在的 redis：缓存失效失败只产生一条告警，不影响写入
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6399"})
	chart := NewChartService(progressRepo, rdb, &config.Config{})
	achievement := NewAchievementService(achievementRepo, progressRepo, goalRepo, notificationRepo)

	return NewProgressService(progressRepo, skillRepo, achievement, chart)
}

func seedSkill(t *testing.T, db *gorm.DB) *model.Skill {
	t.Helper()

	skill := &model.Skill{
		Name:       "Go",
		Category:   model.CategoryBackend,
		Difficulty: model.DifficultyMedium,
	}
	require.NoError(t, db.Create(skill).Error)
	return skill
}

func hoursPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	require.NoError(t, err)
	return d
}

func TestProgressCreate_MissingHours(t *testing.T) {
	db := openTestDB(t)
	svc := newTestProgressService(t, db)
	skill := seedSkill(t, db)

	_, err := svc.Create(1, CreateProgressRequest{
		SkillID: skill.ID,
		Date:    "2024-01-02",
	})
	assert.ErrorIs(t, err, util.ErrMissingHours)

	var count int64
	require.NoError(t, db.Model(&model.ProgressEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProgressCreate_NegativeHours(t *testing.T) {
	db := openTestDB(t)
	svc := newTestProgressService(t, db)
	skill := seedSkill(t, db)

	_, err := svc.Create(1, CreateProgressRequest{
		SkillID:    skill.ID,
		Date:       "2024-01-02",
		HoursSpent: hoursPtr("-1"),
	})
	assert.ErrorIs(t, err, util.ErrNegativeHours)
}

func TestProgressCreate_DuplicateDateRejected(t *testing.T) {
	db := openTestDB(t)
	svc := newTestProgressService(t, db)
	skill := seedSkill(t, db)

	entry, err := svc.Create(1, CreateProgressRequest{
		SkillID:    skill.ID,
		Date:       "2024-01-02",
		HoursSpent: hoursPtr("1.5"),
	})
	require.NoError(t, err)
	assert.True(t, entry.HoursSpent.Equal(decimal.RequireFromString("1.5")))

	_, err = svc.Create(1, CreateProgressRequest{
		SkillID:    skill.ID,
		Date:       "2024-01-02",
		HoursSpent: hoursPtr("2"),
	})
	assert.ErrorIs(t, err, util.ErrDuplicateEntry)

	var count int64
	require.NoError(t, db.Model(&model.ProgressEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// 另一用户同一天同一技能不受影响
	_, err = svc.Create(2, CreateProgressRequest{
		SkillID:    skill.ID,
		Date:       "2024-01-02",
		HoursSpent: hoursPtr("2"),
	})
	assert.NoError(t, err)
}

func TestProgressCreate_UnknownSkill(t *testing.T) {
	db := openTestDB(t)
	svc := newTestProgressService(t, db)

	_, err := svc.Create(1, CreateProgressRequest{
		SkillID:    999,
		Date:       "2024-01-02",
		HoursSpent: hoursPtr("1"),
	})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestProgressCreate_AwardsFirstSteps(t *testing.T) {
	db := openTestDB(t)
	svc := newTestProgressService(t, db)
	skill := seedSkill(t, db)

	_, err := svc.Create(1, CreateProgressRequest{
		SkillID:    skill.ID,
		Date:       "2024-01-02",
		HoursSpent: hoursPtr("1"),
	})
	require.NoError(t, err)

	var achievements []model.Achievement
	require.NoError(t, db.Where("user_id = ?", 1).Find(&achievements).Error)
	require.NotEmpty(t, achievements)
	assert.Equal(t, model.AchievementFirstProgress, achievements[0].AchievementType)
}

// 唯一索引兜底：绕过服务层预检查直接写库，冲突要翻译成 gorm.ErrDuplicatedKey
func TestProgressRepo_UniqueIndexOnUserSkillDate(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewProgressRepository(db)
	skill := seedSkill(t, db)

	day := model.DateOnly(mustDate(t, "2024-01-02"))
	first := &model.ProgressEntry{
		UserID:     1,
		SkillID:    skill.ID,
		Date:       day,
		HoursSpent: decimal.RequireFromString("1"),
	}
	require.NoError(t, repo.Create(first))

	second := &model.ProgressEntry{
		UserID:     1,
		SkillID:    skill.ID,
		Date:       day,
		HoursSpent: decimal.RequireFromString("2"),
	}
	err := repo.Create(second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
