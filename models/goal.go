package models

// EnergyMode 能量模式：高能日全力冲刺，低能日保底执行
type EnergyMode string

const (
	ModeHigh EnergyMode = "high"
	ModeLow  EnergyMode = "low"
)

// Valid 校验模式取值
func (m EnergyMode) Valid() bool {
	return m == ModeHigh || m == ModeLow
}

// Goal 目标模型（含双态执行方案与打卡历史）
type Goal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	HighPlan      string          `json:"highPlan"` // 高能量执行方案
	LowPlan       string          `json:"lowPlan"`  // 低能量执行方案
	PreferredTime string          `json:"preferredTime,omitempty"`
	Milestones    []string        `json:"milestones,omitempty"`
	Streak        int             `json:"streak"`
	History       []HistoryRecord `json:"history"`
}

// HistoryRecord 单次打卡记录，只追加不修改
type HistoryRecord struct {
	Date       string     `json:"date"` // YYYY-MM-DD
	EnergyMode EnergyMode `json:"energy_mode"`
	Rating     int        `json:"rating"` // 展示用的星级权重
	Review     string     `json:"review,omitempty"`
}

// WeekProfile 每周能量画像：星期索引(0=周日..6=周六) -> 默认模式
type WeekProfile map[int]EnergyMode

// DefaultWeekProfile 默认画像：整周高能
func DefaultWeekProfile() WeekProfile {
	p := make(WeekProfile, 7)
	for d := 0; d < 7; d++ {
		p[d] = ModeHigh
	}
	return p
}
