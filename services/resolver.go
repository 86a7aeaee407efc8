package services

import (
	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
)

// EnergyResolver 解析某个日期生效的能量模式。
// 优先级：当日已落定状态 > 每周画像的星期默认值 > 高能兜底。
// 合并流程与月视图着色必须统一走这里。
type EnergyResolver struct {
	store store.Store
}

func NewEnergyResolver(s store.Store) *EnergyResolver {
	return &EnergyResolver{store: s}
}

// ResolveMode 返回date当天生效的模式
func (r *EnergyResolver) ResolveMode(date string) models.EnergyMode {
	// 显式落定的状态永远优先
	if mode, ok := store.LoadDailyStatus(r.store, date); ok {
		return mode
	}

	// 其次查每周画像
	if d, err := utils.ParseDate(date); err == nil {
		profile := store.LoadWeekProfile(r.store)
		if mode, ok := profile[int(d.Weekday())]; ok && mode.Valid() {
			return mode
		}
	}

	// 系统兜底：高能
	return models.ModeHigh
}
