package services_test

import (
	"testing"

	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/services"
	"github.com/LuckyLyon/lifeos/store"
)

func TestResolveModeStatusBeatsProfile(t *testing.T) {
	kv := store.NewMemoryStore()
	resolver := services.NewEnergyResolver(kv)

	// 2024-01-01 是周一(weekday=1)
	date := "2024-01-01"
	if err := store.SaveWeekProfile(kv, models.WeekProfile{1: models.ModeHigh}); err != nil {
		t.Fatalf("SaveWeekProfile failed: %v", err)
	}
	if err := store.SaveDailyStatus(kv, date, models.ModeLow); err != nil {
		t.Fatalf("SaveDailyStatus failed: %v", err)
	}

	if mode := resolver.ResolveMode(date); mode != models.ModeLow {
		t.Fatalf("explicit status must win, got %s", mode)
	}
}

func TestResolveModeProfileDefault(t *testing.T) {
	kv := store.NewMemoryStore()
	resolver := services.NewEnergyResolver(kv)

	if err := store.SaveWeekProfile(kv, models.WeekProfile{1: models.ModeLow}); err != nil {
		t.Fatalf("SaveWeekProfile failed: %v", err)
	}

	if mode := resolver.ResolveMode("2024-01-01"); mode != models.ModeLow {
		t.Fatalf("expected profile default low, got %s", mode)
	}
	// 画像没覆盖的星期兜底为高能
	if mode := resolver.ResolveMode("2024-01-02"); mode != models.ModeHigh {
		t.Fatalf("expected fallback high, got %s", mode)
	}
}

func TestResolveModeFallbackHigh(t *testing.T) {
	kv := store.NewMemoryStore()
	resolver := services.NewEnergyResolver(kv)

	if mode := resolver.ResolveMode("2024-06-15"); mode != models.ModeHigh {
		t.Fatalf("expected system fallback high, got %s", mode)
	}
}

func TestResolveModeMalformedStatusIgnored(t *testing.T) {
	kv := store.NewMemoryStore()
	resolver := services.NewEnergyResolver(kv)

	if err := kv.Set(store.KeyDailyStatus("2024-01-01"), "purple"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if mode := resolver.ResolveMode("2024-01-01"); mode != models.ModeHigh {
		t.Fatalf("malformed status must fall through to default, got %s", mode)
	}
}
