package controllers

import (
	"net/http"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
	"github.com/LuckyLyon/lifeos/utils"
	"github.com/gin-gonic/gin"
)

// 单用户系统里令牌固定标识本机用户
const localUserID = "lifeos-local"

type AuthController struct {
	accessKey string
}

func NewAuthController(accessKey string) *AuthController {
	return &AuthController{accessKey: accessKey}
}

// Login 设备登录：用配置的访问密钥换取JWT
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ac.accessKey == "" || req.AccessKey != ac.accessKey {
		config.Logger.Warnw("设备登录失败", "clientIP", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "访问密钥不正确"})
		return
	}

	token, err := utils.GenerateToken(localUserID)
	if err != nil {
		config.Logger.Errorw("生成令牌失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
