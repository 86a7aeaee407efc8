package services

import (
	"fmt"
	"time"

	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
)

// HeatmapWindow 热力图默认回看天数
const HeatmapWindow = 14

// HistoryTracker 目标打卡历史：追加记录、维护连胜、投影热力图
type HistoryTracker struct {
	store store.Store
}

func NewHistoryTracker(s store.Store) *HistoryTracker {
	return &HistoryTracker{store: s}
}

// RecordCheckIn 为目标追加一条打卡记录并重算连胜。
// 历史只追加不回改；同日重复打卡不增加连胜。
func (t *HistoryTracker) RecordCheckIn(goalID string, record models.HistoryRecord) (models.Goal, error) {
	goals := store.LoadGoals(t.store)
	idx := -1
	for i := range goals {
		if goals[i].ID == goalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Goal{}, fmt.Errorf("目标不存在: %s", goalID)
	}

	goals[idx].History = append(goals[idx].History, record)
	goals[idx].Streak = computeStreak(goals[idx].History)

	if err := store.SaveGoals(t.store, goals); err != nil {
		return models.Goal{}, err
	}
	return goals[idx], nil
}

// computeStreak 从最近一条记录往回数连续打卡天数。
// 同日多条只算一天，间隔≥2天即断档。
func computeStreak(history []models.HistoryRecord) int {
	if len(history) == 0 {
		return 0
	}

	streak := 1
	cur := history[len(history)-1].Date
	for i := len(history) - 2; i >= 0; i-- {
		d := history[i].Date
		if d == cur {
			continue // 同日重复记录
		}
		day, err := utils.ParseDate(cur)
		if err != nil {
			break
		}
		if d != utils.DateString(day.AddDate(0, 0, -1)) {
			break // 断档
		}
		streak++
		cur = d
	}
	return streak
}

// Heatmap 最近windowDays天（含今天）的打卡投影，恒定返回windowDays个单元。
// 同一天有多条记录时取最后追加的那条。
func (t *HistoryTracker) Heatmap(goalID string, windowDays int) ([]models.HeatmapEntry, error) {
	if windowDays <= 0 {
		windowDays = HeatmapWindow
	}

	goals := store.LoadGoals(t.store)
	var goal *models.Goal
	for i := range goals {
		if goals[i].ID == goalID {
			goal = &goals[i]
			break
		}
	}
	if goal == nil {
		return nil, fmt.Errorf("目标不存在: %s", goalID)
	}

	// 每个日期取最后一条记录
	byDate := make(map[string]models.HistoryRecord, len(goal.History))
	for _, rec := range goal.History {
		byDate[rec.Date] = rec
	}

	entries := make([]models.HeatmapEntry, 0, windowDays)
	now := time.Now()
	for i := windowDays - 1; i >= 0; i-- {
		date := utils.DateString(now.AddDate(0, 0, -i))
		entry := models.HeatmapEntry{Date: date}
		if rec, ok := byDate[date]; ok {
			entry.Checked = true
			entry.Mode = rec.EnergyMode
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
