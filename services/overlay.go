package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/go-redis/redis/v8"
)

// MonthLayout 月份参数格式
const MonthLayout = "2006-01"

// OverlayService 月视图着色：扫描整月的当日状态，供日历染色。
// 后台按固定间隔刷新当前月份的结果到Redis，读取方拿到的数据
// 最多滞后一个轮询周期。
type OverlayService struct {
	store    store.Store
	redis    *redis.Client
	interval time.Duration

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewOverlayService(s store.Store, rdb *redis.Client, interval time.Duration) *OverlayService {
	if interval <= 0 {
		interval = time.Second
	}
	return &OverlayService{
		store:    s,
		redis:    rdb,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func overlayCacheKey(month string) string {
	return "lifeos-overlay-" + month
}

// scanMonth 逐日读取已落定状态，未签到的日期不出现在结果里
func (o *OverlayService) scanMonth(month time.Time) map[int]models.EnergyMode {
	year, m := month.Year(), month.Month()
	daysInMonth := time.Date(year, m+1, 0, 0, 0, 0, 0, time.Local).Day()

	days := make(map[int]models.EnergyMode)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, m, day)
		if mode, ok := store.LoadDailyStatus(o.store, date); ok {
			days[day] = mode
		}
	}
	return days
}

// MonthOverlay 返回某月的着色数据，优先走Redis缓存
func (o *OverlayService) MonthOverlay(ctx context.Context, month string) (models.OverlayResponse, error) {
	parsed, err := time.ParseInLocation(MonthLayout, month, time.Local)
	if err != nil {
		return models.OverlayResponse{}, fmt.Errorf("无效的月份格式: %s", month)
	}

	if o.redis != nil {
		if cached, err := o.redis.Get(ctx, overlayCacheKey(month)).Result(); err == nil {
			var days map[int]models.EnergyMode
			if err := json.Unmarshal([]byte(cached), &days); err == nil {
				return models.OverlayResponse{Month: month, Days: days}, nil
			}
		}
	}

	return models.OverlayResponse{Month: month, Days: o.scanMonth(parsed)}, nil
}

// refresh 重算当前月份并写入缓存
func (o *OverlayService) refresh(ctx context.Context) {
	now := time.Now()
	month := now.Format(MonthLayout)
	days := o.scanMonth(now)

	if o.redis == nil {
		return
	}
	data, err := json.Marshal(days)
	if err != nil {
		return
	}
	// 缓存寿命略长于刷新间隔，轮询一停缓存即自然过期
	if err := o.redis.Set(ctx, overlayCacheKey(month), string(data), o.interval*5).Err(); err != nil {
		if config.Logger != nil {
			config.Logger.Warnw("月视图缓存写入失败", "month", month, "error", err)
		}
	}
}

// Run 启动后台轮询，直到Stop被调用
func (o *OverlayService) Run() {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(o.interval)
		defer ticker.Stop()

		ctx := context.Background()
		o.refresh(ctx)
		for {
			select {
			case <-ticker.C:
				o.refresh(ctx)
			case <-o.stop:
				return
			}
		}
	}()
}

// Stop 停止轮询并等待后台协程退出
func (o *OverlayService) Stop() {
	o.once.Do(func() { close(o.stop) })
	o.wg.Wait()
}
