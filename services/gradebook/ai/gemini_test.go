package ai

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestExtractComment(t *testing.T) {
	text := "```json\n{\"summary\":\"Solid semester.\",\"strengths\":\"Math\",\"areas_for_improvement\":\"History\",\"recommendation\":\"Keep it up\"}\n```"
	comment, err := extractComment(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.Summary != "Solid semester." || comment.Recommendation != "Keep it up" {
		t.Errorf("got %+v", comment)
	}
}

func TestExtractCommentNoJSON(t *testing.T) {
	if _, err := extractComment("the model rambled with no JSON"); err == nil {
		t.Error("expected error for output without JSON")
	}
}

func TestParseCommentResponse(t *testing.T) {
	body := []byte(`{
		"candidates": [{
			"content": {
				"parts": [{"text": "{\"summary\":\"ok\",\"strengths\":\"s\",\"areas_for_improvement\":\"a\",\"recommendation\":\"r\"}"}]
			}
		}]
	}`)
	comment, err := parseCommentResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.Strengths != "s" || comment.AreasForImprovement != "a" {
		t.Errorf("got %+v", comment)
	}
}

func TestParseCommentResponseEmptyCandidates(t *testing.T) {
	if _, err := parseCommentResponse([]byte(`{"candidates": []}`)); err == nil {
		t.Error("expected error for empty candidates")
	}
}

func TestGenerateCommentMissingKey(t *testing.T) {
	log := logrus.New()
	gen := NewGeminiCommentGenerator("", time.Second, log)
	if _, err := gen.GenerateComment(context.Background(), "Ana", "Math: 90"); err != ErrUnavailable {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
}
