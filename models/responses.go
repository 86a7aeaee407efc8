package models

// DayPlanResponse 单日计划响应：按时间排好序的任务与当日生效模式
type DayPlanResponse struct {
	Date  string     `json:"date"`
	Mode  EnergyMode `json:"mode"`
	Tasks []Task     `json:"tasks"`
}

// HeatmapEntry 热力图单元：窗口内某一天的打卡情况
type HeatmapEntry struct {
	Date    string     `json:"date"`
	Checked bool       `json:"checked"`
	Mode    EnergyMode `json:"mode,omitempty"` // 未打卡时为空
}

// SuggestResponse 目标建议响应：双态方案与阶段路径
type SuggestResponse struct {
	Title      string   `json:"title"`
	HighPlan   string   `json:"highPlan"`
	LowPlan    string   `json:"lowPlan"`
	Milestones []string `json:"milestones"`
}

// OverlayResponse 月视图着色响应：日(1..31) -> 已落库的模式
type OverlayResponse struct {
	Month string             `json:"month"` // YYYY-MM
	Days  map[int]EnergyMode `json:"days"`
}

// CheckinStatusResponse 是否需要提示签到
type CheckinStatusResponse struct {
	Needed      bool   `json:"needed"`
	LastCheckin string `json:"lastCheckin,omitempty"`
}
