package services_test

import (
	"testing"

	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/services"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
)

func TestMergePreservesManualDiscardsHabit(t *testing.T) {
	existing := []models.Task{
		{ID: "m1", Text: "买菜", Time: "10:00", Source: models.SourceManual, Type: models.ModeLow},
		{ID: "m2", Text: "写周报", Time: "14:00"}, // 无来源，按手动处理
		{ID: "h1", Text: "旧习惯任务", Time: "09:00", Source: models.SourceHabit},
		{ID: "h2", Text: "旧习惯任务2", Source: models.SourceHabit},
	}
	generated := []models.Task{
		{ID: "g1", Text: "健身房锻炼", Time: "18:00", Source: models.SourceHabit, Type: models.ModeHigh},
	}

	merged := services.MergeTasks(existing, generated, models.ModeHigh)

	if len(merged) != 3 {
		t.Fatalf("expected 2 manual + 1 generated = 3 tasks, got %d", len(merged))
	}
	for _, task := range merged {
		if task.ID == "h1" || task.ID == "h2" {
			t.Fatalf("stale habit task %s survived the merge", task.ID)
		}
		if task.Type != models.ModeHigh {
			t.Fatalf("task %s not re-tagged to resolved mode: %s", task.ID, task.Type)
		}
	}
}

func TestMergeIdempotentOnEmptyGenerated(t *testing.T) {
	existing := []models.Task{
		{ID: "m1", Text: "晨跑", Time: "07:00", Source: models.SourceManual, Type: models.ModeHigh},
		{ID: "m2", Text: "读书", Time: "21:00", Source: models.SourceManual, Type: models.ModeHigh},
	}

	merged := services.MergeTasks(existing, nil, models.ModeHigh)

	if len(merged) != len(existing) {
		t.Fatalf("expected %d tasks, got %d", len(existing), len(merged))
	}
	for i, task := range merged {
		if task != existing[i] {
			t.Fatalf("task %d changed by idempotent merge: %+v vs %+v", i, task, existing[i])
		}
	}
}

func TestMergeOrderingNoTimeFirst(t *testing.T) {
	existing := []models.Task{
		{ID: "a", Time: "09:00", Source: models.SourceManual},
		{ID: "b", Time: "07:30", Source: models.SourceManual},
		{ID: "c", Source: models.SourceManual}, // 无时间
	}

	merged := services.MergeTasks(existing, nil, models.ModeLow)

	want := []string{"c", "b", "a"}
	for i, id := range want {
		if merged[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, merged[i].ID)
		}
	}
}

func TestMergeStableOnEqualTimes(t *testing.T) {
	existing := []models.Task{
		{ID: "m1", Time: "09:00", Source: models.SourceManual},
	}
	generated := []models.Task{
		{ID: "g1", Time: "09:00", Source: models.SourceHabit},
	}

	merged := services.MergeTasks(existing, generated, models.ModeHigh)

	if merged[0].ID != "m1" || merged[1].ID != "g1" {
		t.Fatalf("equal times must keep manual-before-generated order, got %s, %s", merged[0].ID, merged[1].ID)
	}
}

func TestGenerateHabitTasksFollowsMode(t *testing.T) {
	goals := []models.Goal{
		{ID: "g1", Title: "健身", HighPlan: "健身房锻炼 45分钟", LowPlan: "做 10 个俯卧撑", PreferredTime: "18:00"},
	}

	high := services.GenerateHabitTasks(goals, models.ModeHigh)
	if high[0].Text != "健身房锻炼 45分钟" || high[0].Duration != 60 {
		t.Fatalf("unexpected high-mode task: %+v", high[0])
	}

	low := services.GenerateHabitTasks(goals, models.ModeLow)
	if low[0].Text != "做 10 个俯卧撑" || low[0].Duration != 15 {
		t.Fatalf("unexpected low-mode task: %+v", low[0])
	}
	if low[0].Source != models.SourceHabit || low[0].Time != "18:00" {
		t.Fatalf("generated task missing habit source or preferred time: %+v", low[0])
	}
}

func TestApplyPlanWritesThrough(t *testing.T) {
	kv := store.NewMemoryStore()
	planner := services.NewPlanner(kv, services.NewEnergyResolver(kv))

	goals := []models.Goal{{ID: "g1", Title: "阅读", HighPlan: "深度阅读 1章", LowPlan: "读 1页"}}
	if err := store.SaveGoals(kv, goals); err != nil {
		t.Fatalf("SaveGoals failed: %v", err)
	}

	date := "2024-03-15"
	tasks, err := planner.ApplyPlan(date, models.ModeLow, false)
	if err != nil {
		t.Fatalf("ApplyPlan failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Text != "读 1页" {
		t.Fatalf("unexpected plan: %+v", tasks)
	}

	mode, ok := store.LoadDailyStatus(kv, date)
	if !ok || mode != models.ModeLow {
		t.Fatalf("daily status not committed: %v %v", mode, ok)
	}
	if _, ok := store.LoadLastCheckin(kv); ok {
		t.Fatal("date-targeted merge must not touch last check-in")
	}

	// 签到流程才推进最近签到日期
	if _, err := planner.ApplyPlan(date, models.ModeLow, true); err != nil {
		t.Fatalf("ApplyPlan failed: %v", err)
	}
	last, ok := store.LoadLastCheckin(kv)
	if !ok || last != utils.TodayString() {
		t.Fatalf("last check-in not set to today: %q", last)
	}
}

func TestApplyPlanEmptyExisting(t *testing.T) {
	kv := store.NewMemoryStore()
	planner := services.NewPlanner(kv, services.NewEnergyResolver(kv))

	goals := []models.Goal{
		{ID: "g1", HighPlan: "跑步 5公里", LowPlan: "散步 5分钟", PreferredTime: "08:00"},
		{ID: "g2", HighPlan: "写代码 1小时", LowPlan: "看教程 15分钟", PreferredTime: "20:00"},
	}
	if err := store.SaveGoals(kv, goals); err != nil {
		t.Fatalf("SaveGoals failed: %v", err)
	}

	tasks, err := planner.ApplyPlan("2024-03-16", models.ModeHigh, false)
	if err != nil {
		t.Fatalf("ApplyPlan failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 generated tasks, got %d", len(tasks))
	}
	if tasks[0].Time != "08:00" || tasks[1].Time != "20:00" {
		t.Fatalf("tasks not time-ordered: %+v", tasks)
	}
}
