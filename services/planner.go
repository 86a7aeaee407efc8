package services

import (
	"sort"

	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
)

// 习惯任务的默认时长（分钟）：高能日完整执行，低能日保底执行
const (
	highDuration = 60
	lowDuration  = 15
)

// Planner 每日计划引擎：生成习惯任务并与已有任务做幂等合并
type Planner struct {
	store    store.Store
	resolver *EnergyResolver
}

func NewPlanner(s store.Store, resolver *EnergyResolver) *Planner {
	return &Planner{store: s, resolver: resolver}
}

// MergeTasks 合并规则：
//  1. 保留手动任务（source 为 manual 或为空），丢弃上一轮生成的习惯任务；
//  2. 保留的手动任务 type 统一改为当日模式（内容不动，只跟随整日状态）；
//  3. 手动任务在前、生成任务整块在后，再按时间稳定排序，无时间视作 00:00。
func MergeTasks(existing, generated []models.Task, mode models.EnergyMode) []models.Task {
	merged := make([]models.Task, 0, len(existing)+len(generated))
	for _, t := range existing {
		if !t.IsManual() {
			continue // 旧的习惯任务被本轮生成结果取代，不累积
		}
		t.Type = mode
		merged = append(merged, t)
	}
	merged = append(merged, generated...)

	sort.SliceStable(merged, func(i, j int) bool {
		return utils.MinuteOfDay(merged[i].Time) < utils.MinuteOfDay(merged[j].Time)
	})
	return merged
}

// GenerateHabitTasks 依据目标列表为指定模式生成习惯任务
func GenerateHabitTasks(goals []models.Goal, mode models.EnergyMode) []models.Task {
	tasks := make([]models.Task, 0, len(goals))
	for _, g := range goals {
		text := g.HighPlan
		duration := highDuration
		if mode == models.ModeLow {
			text = g.LowPlan
			duration = lowDuration
		}
		tasks = append(tasks, models.Task{
			ID:       utils.GenerateID(),
			Text:     text,
			Time:     g.PreferredTime,
			Duration: duration,
			Done:     false,
			Type:     mode,
			Source:   models.SourceHabit,
		})
	}
	return tasks
}

// ApplyPlan 为date生成并落盘计划：合并任务、落定当日状态。
// markCheckin 仅在签到流程为真，此时额外把最近签到日期推到今天；
// 针对其他日期的重新生成不触碰签到标记。
func (p *Planner) ApplyPlan(date string, mode models.EnergyMode, markCheckin bool) ([]models.Task, error) {
	goals := store.LoadGoals(p.store)
	generated := GenerateHabitTasks(goals, mode)

	existing := store.LoadDayTasks(p.store, date)
	merged := MergeTasks(existing, generated, mode)

	if err := store.SaveDayTasks(p.store, date, merged); err != nil {
		return nil, err
	}
	if err := store.SaveDailyStatus(p.store, date, mode); err != nil {
		return nil, err
	}
	if markCheckin {
		if err := store.SaveLastCheckin(p.store, utils.TodayString()); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// DayPlan 读取某日计划，保证按时间排序后返回
func (p *Planner) DayPlan(date string) models.DayPlanResponse {
	tasks := store.LoadDayTasks(p.store, date)
	sort.SliceStable(tasks, func(i, j int) bool {
		return utils.MinuteOfDay(tasks[i].Time) < utils.MinuteOfDay(tasks[j].Time)
	})
	return models.DayPlanResponse{
		Date:  date,
		Mode:  p.resolver.ResolveMode(date),
		Tasks: tasks,
	}
}

// SavePlan 保存用户编辑后的任务列表（时间轴编辑器直接写回）
func (p *Planner) SavePlan(date string, tasks []models.Task) error {
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = utils.GenerateID()
		}
	}
	return store.SaveDayTasks(p.store, date, tasks)
}
