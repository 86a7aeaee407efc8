package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/LuckyLyon/lifeos/utils"
)

// ErrNoGoals 没有目标时既无存量任务可导、也无内容可合成，导出直接中止
var ErrNoGoals = errors.New("还没有目标，无法生成日历")

// ExportFilename 提供给客户端下载的固定文件名
const ExportFilename = "lifeos_plan.ics"

// DefaultExportDays 默认导出未来7天
const DefaultExportDays = 7

const (
	icsTimeLayout = "20060102T150405Z"
	icsHeader     = "BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//LifeOS//V9.3//EN\nCALSCALE:GREGORIAN\nMETHOD:PUBLISH\n"
	icsFooter     = "END:VCALENDAR"
	icsDesc       = "来自 LifeOS 的能量计划"
)

// CalendarExporter 把日期键控的任务存储投影为ICS日历文档
type CalendarExporter struct {
	store store.Store
}

func NewCalendarExporter(s store.Store) *CalendarExporter {
	return &CalendarExporter{store: s}
}

// ExportRange 导出 [start, start+numDays) 的日历。
// 已落库的日期用存量任务，未落库的日期按目标的高能量方案合成
// （导出合成固定取高能变体，这是刻意的简化）。无时间的任务排不进日历，跳过。
func (e *CalendarExporter) ExportRange(start time.Time, numDays int) (string, error) {
	goals := store.LoadGoals(e.store)
	if len(goals) == 0 {
		return "", ErrNoGoals
	}
	if numDays <= 0 {
		numDays = DefaultExportDays
	}

	var b strings.Builder
	b.WriteString(icsHeader)

	for i := 0; i < numDays; i++ {
		day := start.AddDate(0, 0, i)
		dateStr := utils.DateString(day)

		tasks := store.LoadDayTasks(e.store, dateStr)
		if tasks == nil {
			tasks = synthesizeDay(goals)
		}

		for _, task := range tasks {
			if task.Time == "" {
				continue
			}
			writeEvent(&b, day, task)
		}
	}

	b.WriteString(icsFooter)
	return b.String(), nil
}

// synthesizeDay 未落库日期的缺省日程：每个目标一条高能任务，
// 没设偏好时间的从09:00起按序每目标顺延一小时，避免同刻堆叠
func synthesizeDay(goals []models.Goal) []models.Task {
	tasks := make([]models.Task, 0, len(goals))
	for idx, g := range goals {
		t := g.PreferredTime
		if t == "" {
			t = utils.ClockString((9 + idx) * 60)
		}
		tasks = append(tasks, models.Task{
			Text:     g.HighPlan,
			Time:     t,
			Duration: highDuration,
		})
	}
	return tasks
}

// writeEvent 输出单条VEVENT，起止时间为本地钟面换算出的UTC basic格式
func writeEvent(b *strings.Builder, day time.Time, task models.Task) {
	minutes := utils.MinuteOfDay(task.Time)
	startAt := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, time.Local)

	duration := task.Duration
	if duration <= 0 {
		duration = highDuration
	}
	endAt := startAt.Add(time.Duration(duration) * time.Minute)

	b.WriteString("BEGIN:VEVENT\n")
	fmt.Fprintf(b, "SUMMARY:LifeOS: %s\n", task.Text)
	fmt.Fprintf(b, "DTSTART:%s\n", startAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(b, "DTEND:%s\n", endAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(b, "DESCRIPTION:%s\n", icsDesc)
	b.WriteString("STATUS:CONFIRMED\n")
	b.WriteString("END:VEVENT\n")
}
