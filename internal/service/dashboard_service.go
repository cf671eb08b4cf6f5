package service

import (
	"time"

	"skill_tracker_backend/internal/model"
	"skill_tracker_backend/internal/repository"
	"skill_tracker_backend/internal/stats"

	"github.com/shopspring/decimal"
)

// DashboardService 汇总仪表盘数据：基础计数、最近动态和图表序列

type DashboardService struct {
	SkillRepo    *repository.SkillRepository
	ProgressRepo *repository.ProgressRepository
	GoalRepo     *repository.GoalRepository
}

func NewDashboardService(
	skillRepo *repository.SkillRepository,
	progressRepo *repository.ProgressRepository,
	goalRepo *repository.GoalRepository,
) *DashboardService {
	return &DashboardService{
		SkillRepo:    skillRepo,
		ProgressRepo: progressRepo,
		GoalRepo:     goalRepo,
	}
}

type Dashboard struct {
	TotalSkills          int64                      `json:"totalSkills"`
	TotalHours           decimal.Decimal            `json:"totalHours"`
	CompletedGoals       int64                      `json:"completedGoals"`
	PendingGoals         int64                      `json:"pendingGoals"`
	CurrentStreak        int                        `json:"currentStreak"`
	WeeklyHours          decimal.Decimal            `json:"weeklyHours"`
	ProgressLevel        string                     `json:"progressLevel"`
	RecentProgress       []RecentProgressItem       `json:"recentProgress"`
	UpcomingDeadlines    []UpcomingDeadline         `json:"upcomingDeadlines"`
	CategoryDistribution map[string]decimal.Decimal `json:"categoryDistribution"`
	DailySeries          []stats.DailyPoint         `json:"dailySeries"`
}

type RecentProgressItem struct {
	SkillName   string          `json:"skillName"`
	Date        time.Time       `json:"date"`
	HoursSpent  decimal.Decimal `json:"hoursSpent"`
	Description string          `json:"description"`
}

type UpcomingDeadline struct {
	GoalID    uint      `json:"goalId"`
	Title     string    `json:"title"`
	SkillName string    `json:"skillName"`
	Deadline  time.Time `json:"deadline"`
}

const (
	recentProgressLimit    = 5
	upcomingDeadlineLimit  = 5
	recentProgressDays     = 7
	distributionWindowDays = 30
	dailySeriesDays        = 14
)

// GetUserDashboard 一次请求内组装仪表盘，now 即"今天"的参照时间
func (s *DashboardService) GetUserDashboard(userID uint, now time.Time) (*Dashboard, error) {
	today := model.DateOnly(now)

	totalSkills, err := s.SkillRepo.Count()
	if err != nil {
		return nil, err
	}

	totalHours, err := s.ProgressRepo.SumHoursByUser(userID)
	if err != nil {
		return nil, err
	}

	completedGoals, err := s.GoalRepo.CountByCompletion(userID, true)
	if err != nil {
		return nil, err
	}

	pendingGoals, err := s.GoalRepo.CountByCompletion(userID, false)
	if err != nil {
		return nil, err
	}

	// 一年窗口覆盖连续打卡回溯上限，其余统计都在这份快照的子集上计算
	entries, err := s.ProgressRepo.FindByUserSince(userID, today.AddDate(-1, 0, 0))
	if err != nil {
		return nil, err
	}

	upcoming, err := s.GoalRepo.FindUpcoming(userID, today, upcomingDeadlineLimit)
	if err != nil {
		return nil, err
	}

	monthEntries := entriesSince(entries, today.AddDate(0, 0, -distributionWindowDays))
	weekEntries := entriesSince(entries, today.AddDate(0, 0, -recentProgressDays))

	return &Dashboard{
		TotalSkills:          totalSkills,
		TotalHours:           totalHours,
		CompletedGoals:       completedGoals,
		PendingGoals:         pendingGoals,
		CurrentStreak:        stats.CurrentStreak(entries, now),
		WeeklyHours:          stats.WeeklyHours(entries, now),
		ProgressLevel:        stats.ProgressLevel(totalHours),
		RecentProgress:       recentProgressItems(weekEntries, recentProgressLimit),
		UpcomingDeadlines:    upcomingDeadlines(upcoming),
		CategoryDistribution: stats.CategoryDistribution(monthEntries),
		DailySeries:          stats.DailySeries(entries, today.AddDate(0, 0, -(dailySeriesDays-1)), today),
	}, nil
}

// entriesSince 过滤出 since（含当天）之后的记录，入参按日期倒序时结果保持该顺序
func entriesSince(entries []model.ProgressEntry, since time.Time) []model.ProgressEntry {
	var filtered []model.ProgressEntry
	for _, e := range entries {
		if !model.DateOnly(e.Date).Before(model.DateOnly(since)) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func recentProgressItems(entries []model.ProgressEntry, limit int) []RecentProgressItem {
	items := make([]RecentProgressItem, 0, limit)
	for _, e := range entries {
		if len(items) == limit {
			break
		}
		items = append(items, RecentProgressItem{
			SkillName:   e.Skill.Name,
			Date:        model.DateOnly(e.Date),
			HoursSpent:  e.HoursSpent,
			Description: e.Description,
		})
	}
	return items
}

func upcomingDeadlines(goals []model.Goal) []UpcomingDeadline {
	deadlines := make([]UpcomingDeadline, 0, len(goals))
	for _, g := range goals {
		deadlines = append(deadlines, UpcomingDeadline{
			GoalID:    g.ID,
			Title:     g.Title,
			SkillName: g.Skill.Name,
			Deadline:  g.Deadline,
		})
	}
	return deadlines
}
