package utils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout 业务日期统一使用本地
const DateLayout = "2006-01-02"

// TodayString 返回今天的日期字符串（本地时区）
func TodayString() string {
	return time.Now().Format(DateLayout)
}

// DateString 格式化日期
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate 解析 YYYY-MM-DD，按本地时区的零点返回
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// MinuteOfDay 把 HH:MM 换算为当日分钟数；空串或非法值按 0（一天的开始）处理
func MinuteOfDay(hm string) int {
	if hm == "" {
		return 0
	}
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}

// ClockString 分钟数转 HH:MM
func ClockString(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return pad2(h) + ":" + pad2(m)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
