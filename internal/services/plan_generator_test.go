package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestReconcileOutlineAlwaysExactLength(t *testing.T) {
	for n := 1; n <= 365; n++ {
		for _, l := range []int{0, 1, n - 1, n, n + 5} {
			if l < 0 {
				continue
			}
			topics := make([]string, l)
			for i := range topics {
				topics[i] = fmt.Sprintf("topic %d", i+1)
			}
			out := reconcileOutline("Run a marathon", n, topics)
			if len(out) != n {
				t.Fatalf("n=%d l=%d: got %d topics", n, l, len(out))
			}
		}
	}
}

func TestReconcileOutlineTruncatesKeepingFirst(t *testing.T) {
	out := reconcileOutline("x", 2, []string{"a", "b", "c", "d"})
	if out[0] != "a" || out[1] != "b" {
		t.Fatalf("unexpected truncation: %v", out)
	}
}

func TestReconcileOutlinePadsShortList(t *testing.T) {
	out := reconcileOutline("Learn piano", 4, []string{"scales"})
	if out[0] != "scales" {
		t.Fatalf("existing topic lost: %v", out)
	}
	for _, topic := range out[1:] {
		if topic != "Continued progress for Learn piano" {
			t.Fatalf("unexpected padding topic: %q", topic)
		}
	}
}

func TestReconcileOutlineEmptyCandidate(t *testing.T) {
	out := reconcileOutline("Learn piano", 3, nil)
	for i, topic := range out {
		want := fmt.Sprintf("Day %d: Work on Learn piano", i+1)
		if topic != want {
			t.Fatalf("day %d: got %q want %q", i+1, topic, want)
		}
	}
}

func TestGenerateOutlineUsesParsedTopics(t *testing.T) {
	ai := &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		if !strings.Contains(prompt, "Run a marathon") {
			t.Fatalf("goal title missing from prompt")
		}
		return "```json\n[\"Base run\", \"Intervals\", \"Rest\"]\n```", nil
	}}
	pg := NewPlanGeneratorService(newTestLogger(t), ai)
	topics := pg.GenerateOutline(context.Background(), "Run a marathon", "", 3)
	if len(topics) != 3 || topics[0] != "Base run" || topics[2] != "Rest" {
		t.Fatalf("unexpected topics: %v", topics)
	}
}

func TestGenerateOutlineFallsBackOnUpstreamError(t *testing.T) {
	ai := &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", fmt.Errorf("http 429")
	}}
	pg := NewPlanGeneratorService(newTestLogger(t), ai)
	topics := pg.GenerateOutline(context.Background(), "Run a marathon", "", 5)
	if len(topics) != 5 {
		t.Fatalf("expected 5 topics, got %d", len(topics))
	}
	if topics[0] != "Day 1: Work on Run a marathon" {
		t.Fatalf("unexpected fallback topic: %q", topics[0])
	}
}

func TestGenerateDailyContentNeverFails(t *testing.T) {
	ai := &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", fmt.Errorf("connection refused")
	}}
	pg := NewPlanGeneratorService(newTestLogger(t), ai)
	content := pg.GenerateDailyContent(context.Background(), "Run a marathon", "", 2, "Intervals")
	if content == nil {
		t.Fatalf("expected fallback content")
	}
	if content.Overview != "Focus on: Intervals" {
		t.Fatalf("unexpected fallback overview: %q", content.Overview)
	}
}

func TestTryGenerateDailyContentSurfacesUpstreamError(t *testing.T) {
	ai := &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", fmt.Errorf("connection refused")
	}}
	pg := NewPlanGeneratorService(newTestLogger(t), ai)
	content, err := pg.TryGenerateDailyContent(context.Background(), "g", "", 1, "t")
	if err == nil {
		t.Fatalf("expected error")
	}
	if content != nil {
		t.Fatalf("expected nil content on upstream error")
	}
}

func TestTryGenerateDailyContentParseFailureFallsBack(t *testing.T) {
	ai := &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "definitely not json", nil
	}}
	pg := NewPlanGeneratorService(newTestLogger(t), ai)
	content, err := pg.TryGenerateDailyContent(context.Background(), "g", "", 1, "Stretching")
	if err != nil {
		t.Fatalf("parse failure should not error: %v", err)
	}
	if content.Overview != "Focus on: Stretching" {
		t.Fatalf("unexpected content: %+v", content)
	}
}
