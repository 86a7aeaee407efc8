package controllers

import (
	"net/http"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/store"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	store store.Store
}

func NewProfileController(s store.Store) *ProfileController {
	return &ProfileController{store: s}
}

// GetProfile 读取每周能量画像，未设置时返回默认整周高能
func (pc *ProfileController) GetProfile(c *gin.Context) {
	profile := store.LoadWeekProfile(pc.store)
	if profile == nil {
		profile = models.DefaultWeekProfile()
	}
	c.JSON(http.StatusOK, gin.H{"weekProfile": profile})
}

// UpdateProfile 更新每周能量画像
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for day, mode := range req.WeekProfile {
		if day < 0 || day > 6 || !mode.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的能量画像"})
			return
		}
	}

	if err := store.SaveWeekProfile(pc.store, req.WeekProfile); err != nil {
		config.Logger.Errorw("保存能量画像失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存能量画像失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekProfile": req.WeekProfile})
}
