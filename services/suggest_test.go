package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/LuckyLyon/lifeos/services"
)

func TestSuggestCannedKeywords(t *testing.T) {
	// 未配置上游模型时直接走内置模板
	svc := services.NewSuggestService(nil)
	ctx := context.Background()

	exercise := svc.Suggest(ctx, "3个月减肥10斤")
	if exercise.HighPlan != "高强度有氧/力量训练 (40分钟)" || exercise.LowPlan != "拉伸或散步 (10分钟)" {
		t.Fatalf("unexpected exercise suggestion: %+v", exercise)
	}

	coding := svc.Suggest(ctx, "学习Python爬虫")
	if coding.HighPlan != "编写完整Demo (1小时)" {
		t.Fatalf("unexpected coding suggestion: %+v", coding)
	}

	generic := svc.Suggest(ctx, "练习吉他")
	if !strings.Contains(generic.HighPlan, "练习吉他") || !strings.Contains(generic.LowPlan, "练习吉他") {
		t.Fatalf("generic suggestion must embed the prompt: %+v", generic)
	}
	if generic.Title != "练习吉他" {
		t.Fatalf("title must default to the prompt: %q", generic.Title)
	}
}

func TestSuggestAlwaysThreeMilestones(t *testing.T) {
	svc := services.NewSuggestService(nil)

	resp := svc.Suggest(context.Background(), "读完一本书")
	if len(resp.Milestones) != 3 {
		t.Fatalf("expected 3 milestones, got %d", len(resp.Milestones))
	}
}
