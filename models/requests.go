package models

import "fmt"

// LoginRequest 设备登录请求（单用户，用访问密钥换取令牌）
type LoginRequest struct {
	AccessKey string `json:"accessKey" binding:"required"`
}

// CheckinRequest 每日签到请求
type CheckinRequest struct {
	Mode    EnergyMode `json:"mode" binding:"required"`
	Rating  int        `json:"rating"`
	Review  string     `json:"review"`
	Date    string     `json:"date"`    // 为空表示今天
	GoalIDs []string   `json:"goalIds"` // 为空表示全部目标
}

func (r *CheckinRequest) Validate() error {
	if !r.Mode.Valid() {
		return fmt.Errorf("无效的能量模式: %s", r.Mode)
	}
	if r.Rating < 0 {
		return fmt.Errorf("评分不能为负数")
	}
	if r.Rating == 0 {
		r.Rating = 5
	}
	return nil
}

// GeneratePlanRequest 指定日期重新生成计划（不触碰签到标记）
type GeneratePlanRequest struct {
	Mode EnergyMode `json:"mode"` // 为空则按解析器决定
}

// SavePlanRequest 保存用户编辑后的当日任务列表
type SavePlanRequest struct {
	Tasks []Task `json:"tasks"`
}

// CreateGoalRequest 新建目标请求；里程碑由建议接口的返回值显式带入
type CreateGoalRequest struct {
	Title         string   `json:"title" binding:"required"`
	HighPlan      string   `json:"highPlan" binding:"required"`
	LowPlan       string   `json:"lowPlan" binding:"required"`
	PreferredTime string   `json:"preferredTime"`
	Milestones    []string `json:"milestones"`
}

// SuggestRequest 目标建议请求
type SuggestRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// OnboardingRequest 首次引导完成时提交的能量画像与首个目标
type OnboardingRequest struct {
	WeekProfile WeekProfile       `json:"weekProfile" binding:"required"`
	Goal        CreateGoalRequest `json:"goal" binding:"required"`
}

func (r *OnboardingRequest) Validate() error {
	for day, mode := range r.WeekProfile {
		if day < 0 || day > 6 {
			return fmt.Errorf("无效的星期索引: %d", day)
		}
		if !mode.Valid() {
			return fmt.Errorf("无效的能量模式: %s", mode)
		}
	}
	if r.Goal.HighPlan == "" || r.Goal.LowPlan == "" {
		return fmt.Errorf("请填写完整的高能量和低能量目标")
	}
	return nil
}

// UpdateProfileRequest 更新每周能量画像
type UpdateProfileRequest struct {
	WeekProfile WeekProfile `json:"weekProfile" binding:"required"`
}
