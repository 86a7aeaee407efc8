package store

// Store 键值存储抽象：所有业务数据按语义键读写。
// 读不到或读到坏数据都按"无数据"处理，绝不在调用方产生致命错误。
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// 语义键。日期统一为 YYYY-MM-DD。
const (
	KeyGoals         = "lifeos-goals"
	KeyEnergyProfile = "lifeos-energy-profile"
	KeyLastCheckin   = "lifeos-last-checkin"

	tasksKeyPrefix  = "lifeos-tasks-day-"
	statusKeyPrefix = "lifeos-daily-status-"
)

// KeyTasksDay 某日任务列表的键
func KeyTasksDay(date string) string {
	return tasksKeyPrefix + date
}

// KeyDailyStatus 某日已落定模式的键
func KeyDailyStatus(date string) string {
	return statusKeyPrefix + date
}
