package store_test

import (
	"testing"

	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
)

func TestMemoryStoreBasicOps(t *testing.T) {
	kv := store.NewMemoryStore()

	if _, ok := kv.Get("missing"); ok {
		t.Fatal("expected miss for absent key")
	}
	if err := kv.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, ok := kv.Get("k"); !ok || v != "v" {
		t.Fatalf("unexpected value: %q %v", v, ok)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := kv.Get("k"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestMalformedValuesTreatedAsEmpty(t *testing.T) {
	kv := store.NewMemoryStore()

	// 坏数据一律按"无数据"处理，绝不报错
	_ = kv.Set(store.KeyGoals, "{not json")
	_ = kv.Set(store.KeyTasksDay("2024-01-01"), "42")
	_ = kv.Set(store.KeyEnergyProfile, "[]")
	_ = kv.Set(store.KeyDailyStatus("2024-01-01"), "purple")

	if goals := store.LoadGoals(kv); goals != nil {
		t.Fatalf("expected nil goals, got %+v", goals)
	}
	if tasks := store.LoadDayTasks(kv, "2024-01-01"); tasks != nil {
		t.Fatalf("expected nil tasks, got %+v", tasks)
	}
	if profile := store.LoadWeekProfile(kv); profile != nil {
		t.Fatalf("expected nil profile, got %+v", profile)
	}
	if _, ok := store.LoadDailyStatus(kv, "2024-01-01"); ok {
		t.Fatal("malformed status must read as absent")
	}
}

func TestGoalsRoundTrip(t *testing.T) {
	kv := store.NewMemoryStore()

	goals := []models.Goal{{
		ID:            "g1",
		Title:         "健身",
		HighPlan:      "健身房锻炼 45分钟",
		LowPlan:       "做 10 个俯卧撑",
		PreferredTime: "18:00",
		Milestones:    []string{"Day 1-2: 启动期"},
		Streak:        3,
		History: []models.HistoryRecord{
			{Date: "2024-01-01", EnergyMode: models.ModeHigh, Rating: 5, Review: "状态不错"},
		},
	}}
	if err := store.SaveGoals(kv, goals); err != nil {
		t.Fatalf("SaveGoals failed: %v", err)
	}

	loaded := store.LoadGoals(kv)
	if len(loaded) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(loaded))
	}
	got := loaded[0]
	if got.Title != "健身" || got.Streak != 3 || len(got.History) != 1 {
		t.Fatalf("goal did not round-trip: %+v", got)
	}
	if got.History[0].EnergyMode != models.ModeHigh || got.History[0].Review != "状态不错" {
		t.Fatalf("history did not round-trip: %+v", got.History[0])
	}
}

func TestWeekProfileRoundTrip(t *testing.T) {
	kv := store.NewMemoryStore()

	profile := models.WeekProfile{0: models.ModeLow, 1: models.ModeHigh, 6: models.ModeLow}
	if err := store.SaveWeekProfile(kv, profile); err != nil {
		t.Fatalf("SaveWeekProfile failed: %v", err)
	}

	loaded := store.LoadWeekProfile(kv)
	if len(loaded) != 3 || loaded[0] != models.ModeLow || loaded[1] != models.ModeHigh {
		t.Fatalf("profile did not round-trip: %+v", loaded)
	}
}

func TestStoredEmptyTaskListIsNotAbsent(t *testing.T) {
	kv := store.NewMemoryStore()

	// 已落库的空列表和"从未落库"要区分开（导出合成逻辑依赖这一点）
	if err := store.SaveDayTasks(kv, "2024-01-01", []models.Task{}); err != nil {
		t.Fatalf("SaveDayTasks failed: %v", err)
	}
	tasks := store.LoadDayTasks(kv, "2024-01-01")
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", tasks)
	}
}
