package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/services"
	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	exporter *services.CalendarExporter
	overlay  *services.OverlayService
}

func NewCalendarController(exporter *services.CalendarExporter, overlay *services.OverlayService) *CalendarController {
	return &CalendarController{exporter: exporter, overlay: overlay}
}

// MonthOverlay 月视图着色数据
func (cc *CalendarController) MonthOverlay(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = time.Now().Format(services.MonthLayout)
	}

	resp, err := cc.overlay.MonthOverlay(c.Request.Context(), month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportICS 导出未来N天（默认7）的ICS日历文件
func (cc *CalendarController) ExportICS(c *gin.Context) {
	days := services.DefaultExportDays
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的天数"})
			return
		}
		days = n
	}

	content, err := cc.exporter.ExportRange(time.Now(), days)
	if err != nil {
		if errors.Is(err, services.ErrNoGoals) {
			// 没有目标属于前置条件失败，不产出文件
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		config.Logger.Errorw("日历导出失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "日历导出失败"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", services.ExportFilename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}
