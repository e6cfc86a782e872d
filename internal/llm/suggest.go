package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mkravets/planik/internal/model"
)

const suggestSystemPrompt = "You are an AI assistant that helps users create personalized planners. " +
	"Your task is to suggest additional components or features that would enhance their planner. " +
	"Provide 3-5 specific suggestions based on the user's current planner configuration. " +
	"Each suggestion should have a clear title and a brief description explaining its benefits. " +
	"Format your response as a JSON array of objects with 'title' and 'description' fields."

var (
	jsonArrayRe   = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	titleLineRe   = regexp.MustCompile(`^(\d+[.):]|[-*]|\*\*|#)`)
	titlePrefixRe = regexp.MustCompile(`^(\d+[.):]|[-*]|\*\*|#)\s*`)
)

// Suggestions asks the model for planner enhancement ideas and parses the
// reply, tolerating models that ignore the JSON instruction: JSON array
// extraction first, then the whole body as JSON, then a numbered/bulleted
// text list, and finally the raw reply as a single generic suggestion.
func (c *Client) Suggestions(ctx context.Context, prompt string) ([]model.Suggestion, error) {
	messages := []Message{
		{Role: "system", Content: suggestSystemPrompt},
		{Role: "user", Content: prompt},
	}

	resp, err := c.chatCompletion(ctx, messages, nil, defaultTemperature, 500)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no response from model")
	}
	content := resp.Choices[0].Message.Content

	if suggestions := parseSuggestionJSON(content); len(suggestions) > 0 {
		return suggestions, nil
	}
	if suggestions := parseSuggestionText(content); len(suggestions) > 0 {
		return suggestions, nil
	}
	return []model.Suggestion{{Title: "AI Recommendation", Description: content}}, nil
}

func parseSuggestionJSON(content string) []model.Suggestion {
	raw := content
	if m := jsonArrayRe.FindString(content); m != "" {
		raw = m
	}

	var parsed []model.Suggestion
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}

	var out []model.Suggestion
	for _, s := range parsed {
		if s.Title != "" && s.Description != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseSuggestionText scans a plain-text reply for title lines (numbered,
// bulleted, or all-caps) followed by description lines.
func parseSuggestionText(content string) []model.Suggestion {
	var (
		out         []model.Suggestion
		title       string
		description []string
	)

	flush := func() {
		if title != "" && len(description) > 0 {
			out = append(out, model.Suggestion{
				Title:       title,
				Description: strings.Join(description, " "),
			})
		}
		description = nil
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if titleLineRe.MatchString(line) || isUpperLine(line) {
			flush()
			title = titlePrefixRe.ReplaceAllString(line, "")
			title = strings.TrimSpace(strings.Trim(title, "*"))
			continue
		}

		if title != "" {
			description = append(description, line)
		}
	}
	flush()

	return out
}

// isUpperLine reports whether the line has letters and all of them are
// upper case.
func isUpperLine(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}
