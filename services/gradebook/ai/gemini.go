// Package ai calls the Gemini generateContent endpoint to turn a grade
// summary into a narrative report comment. The call has one hard timeout
// and no retry; every failure surfaces as ErrUnavailable to the handler.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gradebook/domain"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

// ErrUnavailable is the only error callers see; the real cause goes to the log.
var ErrUnavailable = errors.New("AI service unavailable")

type geminiCommentGenerator struct {
	apiKey string
	client *http.Client
	log    *logrus.Logger
}

func NewGeminiCommentGenerator(apiKey string, timeout time.Duration, log *logrus.Logger) domain.CommentGenerator {
	return &geminiCommentGenerator{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func buildPrompt(studentName, gradeSummary string) string {
	return fmt.Sprintf(`You are a homeroom teacher writing a semester report comment for the student %s.

Their grade summary:
%s

IMPORTANT: Respond in this exact JSON format:
{
  "summary": "<one paragraph overall summary>",
  "strengths": "<what the student does well>",
  "areas_for_improvement": "<where the student should improve>",
  "recommendation": "<concrete advice for next semester>"
}`, studentName, gradeSummary)
}

func (g *geminiCommentGenerator) GenerateComment(ctx context.Context, studentName, gradeSummary string) (*domain.AIComment, error) {
	if g.apiKey == "" {
		g.log.Error("GEMINI_API_KEY not configured")
		return nil, ErrUnavailable
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": buildPrompt(studentName, gradeSummary)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.2,
			"maxOutputTokens": 1024,
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		g.log.Errorf("could not marshal Gemini request: %v", err)
		return nil, ErrUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, geminiEndpoint+"?key="+g.apiKey, bytes.NewBuffer(jsonBody))
	if err != nil {
		g.log.Errorf("could not build Gemini request: %v", err)
		return nil, ErrUnavailable
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Errorf("Gemini call failed: %v", err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		g.log.Errorf("Gemini API error (%d): %s", resp.StatusCode, string(body))
		return nil, ErrUnavailable
	}

	comment, err := parseCommentResponse(body)
	if err != nil {
		g.log.Errorf("could not parse Gemini response: %v", err)
		return nil, ErrUnavailable
	}

	return comment, nil
}

func parseCommentResponse(body []byte) (*domain.AIComment, error) {
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	return extractComment(geminiResp.Candidates[0].Content.Parts[0].Text)
}

// extractComment tolerates markdown code fences around the JSON the model
// was asked for.
func extractComment(text string) (*domain.AIComment, error) {
	jsonStart := strings.Index(text, "{")
	jsonEnd := strings.LastIndex(text, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var comment domain.AIComment
	if err := json.Unmarshal([]byte(text[jsonStart:jsonEnd+1]), &comment); err != nil {
		return nil, fmt.Errorf("invalid JSON from model: %v", err)
	}

	return &comment, nil
}
