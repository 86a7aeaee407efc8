package models

// 任务来源
const (
	SourceManual = "manual" // 用户手动录入
	SourceHabit  = "habit"  // 依据目标与当日模式生成
)

// Task 某个日期下的一条日程任务
type Task struct {
	ID       string     `json:"id"`
	Text     string     `json:"text"`
	Time     string     `json:"time,omitempty"` // HH:MM，可为空（无时间的任务排最前）
	Duration int        `json:"duration,omitempty"`
	Done     bool       `json:"done"`
	Type     EnergyMode `json:"type"`
	Source   string     `json:"source,omitempty"` // 为空视为 manual
}

// IsManual 无来源标记的旧数据一律按手动任务处理
func (t Task) IsManual() bool {
	return t.Source == SourceManual || t.Source == ""
}
