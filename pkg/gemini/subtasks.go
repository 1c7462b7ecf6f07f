package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const subtaskSystemPrompt = `You break tasks into small actionable steps for people re-entering society after incarceration. Given a task title, respond with a JSON array of 3 to 5 short step strings, nothing else. Steps must be concrete and ordered.`

// GenerateSubtasks asks the model for 3-5 actionable steps for a task title.
// The response is expected to be a bare JSON array of strings.
func (c *Client) GenerateSubtasks(ctx context.Context, title string) ([]string, error) {
	resp, err := c.GenerateContent(ctx, GenerateRequest{
		SystemInstruction: &Content{
			Parts: []Part{{Text: subtaskSystemPrompt}},
		},
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: title}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      0.4,
			MaxOutputTokens:  256,
			ResponseMimeType: "application/json",
		},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: empty response for subtask generation")
	}

	raw := strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text)
	// Some models wrap JSON in markdown fences even when asked not to.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var steps []string
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, fmt.Errorf("gemini: unparseable subtask response: %w", err)
	}

	out := make([]string, 0, len(steps))
	for _, s := range steps {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gemini: no usable steps in response")
	}
	return out, nil
}
