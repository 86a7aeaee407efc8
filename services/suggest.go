package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/LuckyLyon/lifeos/config"
	"github.com/LuckyLyon/lifeos/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// SuggestService 目标建议：把一句话意图扩写成蓝绿双态方案与阶段路径。
// 配置了Deepseek则先问模型，任何失败都静默落回内置模板，
// 返回值由调用方立即消费，不在任何全局暂存。
type SuggestService struct {
	client *DeepseekClient
}

func NewSuggestService(client *DeepseekClient) *SuggestService {
	return &SuggestService{client: client}
}

// Suggest 生成目标建议
func (s *SuggestService) Suggest(ctx context.Context, prompt string) models.SuggestResponse {
	if s.client != nil {
		if resp, err := s.askModel(ctx, prompt); err == nil {
			return resp
		} else if config.Logger != nil {
			config.Logger.Warnw("模型建议失败，使用内置模板", "error", err)
		}
	}
	return cannedSuggestion(prompt)
}

// cannedSuggestion 内置模板：按关键词给出双态方案
func cannedSuggestion(prompt string) models.SuggestResponse {
	resp := models.SuggestResponse{
		Title:    prompt,
		HighPlan: fmt.Sprintf("专注执行: %s (45分钟)", prompt),
		LowPlan:  fmt.Sprintf("保持手感: %s (5分钟)", prompt),
		Milestones: []string{
			"Day 1-2: 启动期",
			"Day 3-5: 核心突破",
			"Day 6-7: 复盘进阶",
		},
	}

	switch {
	case strings.Contains(prompt, "减肥"), strings.Contains(prompt, "运动"):
		resp.HighPlan = "高强度有氧/力量训练 (40分钟)"
		resp.LowPlan = "拉伸或散步 (10分钟)"
	case strings.Contains(prompt, "书"), strings.Contains(prompt, "读"):
		resp.HighPlan = "深度阅读并做笔记 (1章)"
		resp.LowPlan = "随意翻看或读一段 (1页)"
	case strings.Contains(prompt, "代码"), strings.Contains(prompt, "Python"):
		resp.HighPlan = "编写完整Demo (1小时)"
		resp.LowPlan = "看教程或复习 (15分钟)"
	}
	return resp
}

const suggestPrompt = `你是一个习惯规划助手。用户会给出一个目标，
请生成高能量日与低能量日两种执行方案，以及7天内的3条阶段路径。
只返回JSON，字段：title, highPlan, lowPlan, milestones（字符串数组）。`

func (s *SuggestService) askModel(ctx context.Context, prompt string) (models.SuggestResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(suggestPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	result, err := s.client.DsChat.GenerateContent(ctx, messages, llms.WithTemperature(0.7))
	if err != nil {
		return models.SuggestResponse{}, err
	}
	if len(result.Choices) == 0 {
		return models.SuggestResponse{}, fmt.Errorf("模型未返回内容")
	}

	var resp models.SuggestResponse
	if err := json.Unmarshal([]byte(result.Choices[0].Content), &resp); err != nil {
		return models.SuggestResponse{}, fmt.Errorf("建议解析失败: %w", err)
	}
	if resp.Title == "" {
		resp.Title = prompt
	}
	if resp.HighPlan == "" || resp.LowPlan == "" {
		return models.SuggestResponse{}, fmt.Errorf("建议内容不完整")
	}
	return resp, nil
}
