package stats

import (
	"testing"
	"time"

	"skill_tracker_backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, hours string) model.ProgressEntry {
	return model.ProgressEntry{
		Date:       date,
		HoursSpent: decimal.RequireFromString(hours),
	}
}

func TestTotalHours(t *testing.T) {
	assert.True(t, TotalHours(nil).IsZero())

	entries := []model.ProgressEntry{
		entry(day(2024, 1, 1), "2.00"),
		entry(day(2024, 1, 2), "1.50"),
	}
	assert.True(t, TotalHours(entries).Equal(decimal.RequireFromString("3.5")))
}

func TestTotalHours_SubsetAdditivity(t *testing.T) {
	entries := []model.ProgressEntry{
		entry(day(2024, 1, 1), "2.00"),
		entry(day(2024, 1, 2), "1.50"),
		entry(day(2024, 1, 5), "0.75"),
		entry(day(2024, 1, 9), "3.25"),
	}

	// 任意切分后分别求和应等于整体求和
	left := TotalHours(entries[:2])
	right := TotalHours(entries[2:])
	assert.True(t, left.Add(right).Equal(TotalHours(entries)))
}

func TestCurrentStreak(t *testing.T) {
	asOf := day(2024, 1, 2)

	tests := []struct {
		name    string
		entries []model.ProgressEntry
		want    int
	}{
		{"no entries", nil, 0},
		{
			"two consecutive days ending today",
			[]model.ProgressEntry{
				entry(day(2024, 1, 1), "2.00"),
				entry(day(2024, 1, 2), "1.50"),
			},
			2,
		},
		{
			"gap breaks the streak",
			[]model.ProgressEntry{
				entry(day(2023, 12, 30), "1.00"),
				entry(day(2024, 1, 1), "2.00"),
				entry(day(2024, 1, 2), "1.50"),
			},
			2,
		},
		{
			"no entry today means zero",
			[]model.ProgressEntry{
				entry(day(2024, 1, 1), "2.00"),
			},
			0,
		},
		{
			"same day duplicates count once",
			[]model.ProgressEntry{
				entry(day(2024, 1, 2), "1.00"),
				entry(day(2024, 1, 2), "0.50"),
			},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.entries, asOf))
		})
	}
}

func TestCurrentStreak_LookbackCap(t *testing.T) {
	// 远超上限的连续记录，回溯到 365 天为止
	asOf := day(2024, 12, 31)
	var entries []model.ProgressEntry
	for d := asOf; d.After(day(2022, 12, 31)); d = d.AddDate(0, 0, -1) {
		entries = append(entries, entry(d, "1.00"))
	}
	assert.Equal(t, 365, CurrentStreak(entries, asOf))
}

func TestWeeklyHours(t *testing.T) {
	// 2024-01-03 是周三，所在周从周一 2024-01-01 起算
	asOf := day(2024, 1, 3)
	entries := []model.ProgressEntry{
		entry(day(2023, 12, 31), "5.00"), // 周日，上一周
		entry(day(2024, 1, 1), "2.00"),   // 周一
		entry(day(2024, 1, 3), "1.50"),   // 周三当天
		entry(day(2024, 1, 4), "4.00"),   // asOf 之后
	}
	assert.True(t, WeeklyHours(entries, asOf).Equal(decimal.RequireFromString("3.5")))
}

func TestWeeklyHours_MondayResets(t *testing.T) {
	// asOf 是周一时，只有当天的记录计入
	asOf := day(2024, 1, 8)
	entries := []model.ProgressEntry{
		entry(day(2024, 1, 7), "3.00"), // 周日
		entry(day(2024, 1, 8), "1.00"),
	}
	assert.True(t, WeeklyHours(entries, asOf).Equal(decimal.NewFromInt(1)))
}

func TestCategoryDistribution(t *testing.T) {
	frontend := model.Skill{Category: model.CategoryFrontend}
	backend := model.Skill{Category: model.CategoryBackend}

	entries := []model.ProgressEntry{
		{Skill: frontend, HoursSpent: decimal.RequireFromString("2.00")},
		{Skill: frontend, HoursSpent: decimal.RequireFromString("1.00")},
		{Skill: backend, HoursSpent: decimal.RequireFromString("0.50")},
	}

	dist := CategoryDistribution(entries)
	require.Len(t, dist, 2)
	assert.True(t, dist["Frontend Development"].Equal(decimal.NewFromInt(3)))
	assert.True(t, dist["Backend Development"].Equal(decimal.RequireFromString("0.5")))
}

func TestDailySeries(t *testing.T) {
	entries := []model.ProgressEntry{
		entry(day(2024, 1, 1), "2.00"),
		entry(day(2024, 1, 2), "1.50"),
	}

	series := DailySeries(entries, day(2024, 1, 1), day(2024, 1, 3))
	require.Len(t, series, 3)

	assert.Equal(t, day(2024, 1, 1), series[0].Date)
	assert.True(t, series[0].Hours.Equal(decimal.NewFromInt(2)))
	assert.True(t, series[1].Hours.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, series[2].Hours.IsZero())
}

func TestDailySeries_SameDaySummed(t *testing.T) {
	entries := []model.ProgressEntry{
		entry(day(2024, 1, 1), "1.00"),
		entry(day(2024, 1, 1), "0.25"),
	}

	series := DailySeries(entries, day(2024, 1, 1), day(2024, 1, 1))
	require.Len(t, series, 1)
	assert.True(t, series[0].Hours.Equal(decimal.RequireFromString("1.25")))
}

func TestDailySeries_InvertedWindowIsEmptyArray(t *testing.T) {
	series := DailySeries(nil, day(2024, 1, 5), day(2024, 1, 1))
	require.NotNil(t, series)
	assert.Empty(t, series)
}

func TestProgressLevel(t *testing.T) {
	tests := []struct {
		hours string
		want  string
	}{
		{"0", LevelBeginner},
		{"19.99", LevelBeginner},
		{"20", LevelIntermediate},
		{"49.99", LevelIntermediate},
		{"50", LevelAdvanced},
		{"99.99", LevelAdvanced},
		{"100", LevelExpert},
		{"250.5", LevelExpert},
	}

	for _, tt := range tests {
		t.Run(tt.hours, func(t *testing.T) {
			assert.Equal(t, tt.want, ProgressLevel(decimal.RequireFromString(tt.hours)))
		})
	}
}

func TestAverageHours(t *testing.T) {
	assert.True(t, AverageHours(decimal.Zero, 0).IsZero())
	assert.True(t, AverageHours(decimal.RequireFromString("3.5"), 2).Equal(decimal.RequireFromString("1.75")))
	// 除不尽保留两位
	assert.True(t, AverageHours(decimal.NewFromInt(10), 3).Equal(decimal.RequireFromString("3.33")))
}

func TestRecentProgress(t *testing.T) {
	entries := []model.ProgressEntry{
		entry(day(2024, 1, 1), "1.00"),
		entry(day(2024, 1, 5), "2.00"),
		entry(day(2024, 1, 3), "3.00"),
	}

	recent := RecentProgress(entries, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, day(2024, 1, 5), recent[0].Date)
	assert.Equal(t, day(2024, 1, 3), recent[1].Date)
}

func TestBuildSkillStatistics(t *testing.T) {
	skill := &model.Skill{Name: "Go", Category: model.CategoryBackend}
	entries := []model.ProgressEntry{
		entry(day(2024, 1, 1), "2.00"),
		entry(day(2024, 1, 2), "1.00"),
	}
	goals := []model.Goal{
		{Completed: true},
		{Completed: false},
	}
	resources := []model.LearningResource{
		{IsCompleted: true},
		{IsCompleted: true},
		{IsCompleted: false},
	}

	got := BuildSkillStatistics(skill, entries, goals, resources)

	assert.Equal(t, "Go", got.SkillName)
	assert.True(t, got.TotalHours.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 2, got.TotalSessions)
	assert.True(t, got.AvgHoursPerSession.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, 1, got.CompletedGoals)
	assert.Equal(t, 2, got.TotalGoals)
	assert.Equal(t, 2, got.CompletedResources)
	assert.Equal(t, 3, got.TotalResources)
	require.Len(t, got.RecentProgress, 2)
	assert.Equal(t, day(2024, 1, 2), got.RecentProgress[0].Date)
}
