// Package stats 把已拉取的练习记录快照计算为仪表盘指标。
// 所有函数均为纯函数：不访问存储，不持有状态，小时数统一用 decimal 避免浮点累加漂移。
package stats

import (
	"sort"
	"time"

	"skill_tracker_backend/internal/model"

	"github.com/shopspring/decimal"
)

const (
	dateKeyFormat = "2006-01-02"

	// maxStreakLookback 连续打卡回溯上限，保证计算必然终止
	maxStreakLookback = 365
)

// 进度等级名称，按累计小时数划档
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// DailyPoint 单日练习小时数
type DailyPoint struct {
	Date  time.Time       `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

// TotalHours 求记录集的小时总和，空集返回 0
func TotalHours(entries []model.ProgressEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.HoursSpent)
	}
	return total
}

// CurrentStreak 从 asOf（含当天）逐日回溯，统计连续有练习记录的天数。
// asOf 当天没有记录时返回 0，最多回溯 365 天。
func CurrentStreak(entries []model.ProgressEntry, asOf time.Time) int {
	active := activeDates(entries)

	streak := 0
	day := model.DateOnly(asOf)
	for i := 0; i < maxStreakLookback; i++ {
		if !active[day.Format(dateKeyFormat)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// WeeklyHours 求 asOf 所在周（周一起算）到 asOf 当天的小时总和
func WeeklyHours(entries []model.ProgressEntry, asOf time.Time) decimal.Decimal {
	end := model.DateOnly(asOf)
	// time.Weekday 以周日为 0，换算成周一为 0 的偏移
	offset := (int(end.Weekday()) + 6) % 7
	start := end.AddDate(0, 0, -offset)

	total := decimal.Zero
	for _, e := range entries {
		d := model.DateOnly(e.Date)
		if !d.Before(start) && !d.After(end) {
			total = total.Add(e.HoursSpent)
		}
	}
	return total
}

// CategoryDistribution 按技能分类（展示名）汇总小时数，没有记录的分类不出现在结果里。
// 记录需预加载 Skill 关联。
func CategoryDistribution(entries []model.ProgressEntry) map[string]decimal.Decimal {
	dist := make(map[string]decimal.Decimal)
	for _, e := range entries {
		label := e.Skill.Category.Label()
		dist[label] = dist[label].Add(e.HoursSpent)
	}
	return dist
}

// DailySeries 生成 [start, end]（均含）逐日的小时数序列，无记录的日期补 0，按时间升序。
func DailySeries(entries []model.ProgressEntry, start, end time.Time) []DailyPoint {
	sums := make(map[string]decimal.Decimal)
	for _, e := range entries {
		key := model.DateOnly(e.Date).Format(dateKeyFormat)
		sums[key] = sums[key].Add(e.HoursSpent)
	}

	// 序列化为 JSON 时空窗口也要是数组而不是 null
	series := make([]DailyPoint, 0)
	for day := model.DateOnly(start); !day.After(model.DateOnly(end)); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateKeyFormat)
		hours, ok := sums[key]
		if !ok {
			hours = decimal.Zero
		}
		series = append(series, DailyPoint{Date: day, Hours: hours})
	}
	return series
}

// ProgressLevel 把累计小时数映射为等级档位，下界含等号
func ProgressLevel(totalHours decimal.Decimal) string {
	switch {
	case totalHours.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return LevelExpert
	case totalHours.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return LevelAdvanced
	case totalHours.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// AverageHours 平均每次练习小时数，零次练习返回 0 而不是除零
func AverageHours(totalHours decimal.Decimal, sessions int) decimal.Decimal {
	if sessions == 0 {
		return decimal.Zero
	}
	return totalHours.DivRound(decimal.NewFromInt(int64(sessions)), 2)
}

// RecentEntry 最近练习摘要
type RecentEntry struct {
	Date        time.Time       `json:"date"`
	HoursSpent  decimal.Decimal `json:"hoursSpent"`
	Description string          `json:"description"`
}

// SkillStatistics 单个技能的聚合统计
type SkillStatistics struct {
	SkillName          string          `json:"skillName"`
	TotalHours         decimal.Decimal `json:"totalHours"`
	TotalSessions      int             `json:"totalSessions"`
	AvgHoursPerSession decimal.Decimal `json:"avgHoursPerSession"`
	CompletedGoals     int             `json:"completedGoals"`
	TotalGoals         int             `json:"totalGoals"`
	CompletedResources int             `json:"completedResources"`
	TotalResources     int             `json:"totalResources"`
	RecentProgress     []RecentEntry   `json:"recentProgress"`
}

// BuildSkillStatistics 由技能的练习/目标/资源快照组装统计结果
func BuildSkillStatistics(skill *model.Skill, entries []model.ProgressEntry, goals []model.Goal, resources []model.LearningResource) SkillStatistics {
	total := TotalHours(entries)

	completedGoals := 0
	for _, g := range goals {
		if g.Completed {
			completedGoals++
		}
	}

	completedResources := 0
	for _, r := range resources {
		if r.IsCompleted {
			completedResources++
		}
	}

	return SkillStatistics{
		SkillName:          skill.Name,
		TotalHours:         total,
		TotalSessions:      len(entries),
		AvgHoursPerSession: AverageHours(total, len(entries)),
		CompletedGoals:     completedGoals,
		TotalGoals:         len(goals),
		CompletedResources: completedResources,
		TotalResources:     len(resources),
		RecentProgress:     RecentProgress(entries, 5),
	}
}

// RecentProgress 取最近的 limit 条练习记录，按日期降序
func RecentProgress(entries []model.ProgressEntry, limit int) []RecentEntry {
	sorted := make([]model.ProgressEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]RecentEntry, 0, len(sorted))
	for _, e := range sorted {
		recent = append(recent, RecentEntry{
			Date:        model.DateOnly(e.Date),
			HoursSpent:  e.HoursSpent,
			Description: e.Description,
		})
	}
	return recent
}

func activeDates(entries []model.ProgressEntry) map[string]bool {
	active := make(map[string]bool, len(entries))
	for _, e := range entries {
		active[model.DateOnly(e.Date).Format(dateKeyFormat)] = true
	}
	return active
}
