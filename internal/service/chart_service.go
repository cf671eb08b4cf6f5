package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skill_tracker_backend/internal/config"
	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/stats"
	"skill_tracker_backend/internal/util"
	"skill_tracker_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ChartService 任意回看窗口的图表数据，带 Redis 读缓存
// 缓存键按 (用户, 窗口天数)，写入练习记录时整体失效

type ChartService struct {
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
	TTL          time.Duration
}

func NewChartService(progressRepo *repository.ProgressRepository, rdb *redis.Client, cfg *config.Config) *ChartService {
	return &ChartService{
		ProgressRepo: progressRepo,
		Redis:        rdb,
		TTL:          time.Duration(cfg.Cache.ChartTTLMinutes) * time.Minute,
	}
}

// ChartData 图表载荷：daily_progress 只含有记录的日期，键为 YYYY-MM-DD
type ChartData struct {
	DailyProgress     map[string]decimal.Decimal `json:"dailyProgress"`
	CategoryBreakdown map[string]decimal.Decimal `json:"categoryBreakdown"`
	TotalHours        decimal.Decimal            `json:"totalHours"`
	TotalDays         int                        `json:"totalDays"`
}

// GetChartData 计算最近 days 天（含今天）的图表数据，days 必须 ≥1
func (s *ChartService) GetChartData(userID uint, days int, now time.Time) (*ChartData, error) {
	if days < 1 {
		return nil, util.ErrInvalidWindow
	}

	ctx := context.Background()
	key := s.cacheKey(userID, days)

	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var data ChartData
		if err := json.Unmarshal([]byte(cached), &data); err == nil {
			return &data, nil
		}
	}

	end := model.DateOnly(now)
	start := end.AddDate(0, 0, -days)

	entries, err := s.ProgressRepo.FindByUserBetween(userID, start, end)
	if err != nil {
		return nil, err
	}

	daily := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, e := range entries {
		key := model.DateOnly(e.Date).Format(util.DateFormat)
		daily[key] = daily[key].Add(e.HoursSpent)
		total = total.Add(e.HoursSpent)
	}

	data := &ChartData{
		DailyProgress:     daily,
		CategoryBreakdown: stats.CategoryDistribution(entries),
		TotalHours:        total,
		TotalDays:         len(daily),
	}

	if payload, err := json.Marshal(data); err == nil {
		if err := s.Redis.Set(ctx, key, payload, s.TTL).Err(); err != nil {
			logger.Log.Warn("Failed to cache chart data", zap.Error(err))
		}
	}

	return data, nil
}

// InvalidateUser 清掉该用户所有窗口的图表缓存
func (s *ChartService) InvalidateUser(userID uint) {
	ctx := context.Background()
	keys, err := s.Redis.Keys(ctx, fmt.Sprintf("chart:%d:*", userID)).Result()
	if err != nil {
		logger.Log.Warn("Failed to scan chart cache keys", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		if err := s.Redis.Del(ctx, keys...).Err(); err != nil {
			logger.Log.Warn("Failed to invalidate chart cache", zap.Error(err))
		}
	}
}

func (s *ChartService) cacheKey(userID uint, days int) string {
	return fmt.Sprintf("chart:%d:%d", userID, days)
}
