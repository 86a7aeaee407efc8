package store

import (
	"encoding/json"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
)

// 各语义键的类型化读写。读取遵循"缺失或损坏按空值处理"的约定，
// 坏数据只记日志，不向上抛错。

func logWarn(msg string, kv ...interface{}) {
	if config.Logger != nil {
		config.Logger.Warnw(msg, kv...)
	}
}

// LoadGoals 读取目标列表
func LoadGoals(s Store) []models.Goal {
	raw, ok := s.Get(KeyGoals)
	if !ok {
		return nil
	}
	var goals []models.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		logWarn("目标列表数据损坏，按空列表处理", "error", err)
		return nil
	}
	return goals
}

// SaveGoals 写回目标列表
func SaveGoals(s Store, goals []models.Goal) error {
	data, err := json.Marshal(goals)
	if err != nil {
		return err
	}
	return s.Set(KeyGoals, string(data))
}

// LoadDayTasks 读取某日任务列表
func LoadDayTasks(s Store, date string) []models.Task {
	raw, ok := s.Get(KeyTasksDay(date))
	if !ok {
		return nil
	}
	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		logWarn("任务列表数据损坏，按空列表处理", "date", date, "error", err)
		return nil
	}
	return tasks
}

// SaveDayTasks 写回某日任务列表
func SaveDayTasks(s Store, date string, tasks []models.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.Set(KeyTasksDay(date), string(data))
}

// LoadDailyStatus 读取某日已落定的模式；未签到的日期返回 false
func LoadDailyStatus(s Store, date string) (models.EnergyMode, bool) {
	raw, ok := s.Get(KeyDailyStatus(date))
	if !ok {
		return "", false
	}
	mode := models.EnergyMode(raw)
	if !mode.Valid() {
		logWarn("当日状态数据损坏，按未签到处理", "date", date, "value", raw)
		return "", false
	}
	return mode, true
}

// SaveDailyStatus 落定某日模式
func SaveDailyStatus(s Store, date string, mode models.EnergyMode) error {
	return s.Set(KeyDailyStatus(date), string(mode))
}

// LoadWeekProfile 读取每周能量画像
func LoadWeekProfile(s Store) models.WeekProfile {
	raw, ok := s.Get(KeyEnergyProfile)
	if !ok {
		return nil
	}
	var profile models.WeekProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		logWarn("能量画像数据损坏，按未设置处理", "error", err)
		return nil
	}
	return profile
}

// SaveWeekProfile 写回每周能量画像
func SaveWeekProfile(s Store, profile models.WeekProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.Set(KeyEnergyProfile, string(data))
}

// LoadLastCheckin 读取最近一次签到日期
func LoadLastCheckin(s Store) (string, bool) {
	return s.Get(KeyLastCheckin)
}

// SaveLastCheckin 更新最近一次签到日期
func SaveLastCheckin(s Store, date string) error {
	return s.Set(KeyLastCheckin, date)
}
