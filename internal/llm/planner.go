package llm

import (
	"context"
	"encoding/json"

	"github.com/mkravets/planik/internal/model"
)

// plannerToolParams is the JSON schema for the add_planner_items function.
var plannerToolParams = json.RawMessage(`{
	"type": "object",
	"properties": {
		"items": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"type": {
						"type": "string",
						"enum": ["event", "task", "note"],
						"description": "Type of planner item"
					},
					"title": {
						"type": "string",
						"description": "Title of the planner item"
					},
					"time": {
						"type": "string",
						"description": "Time of the event in HH:MM format (only for events)"
					},
					"description": {
						"type": "string",
						"description": "Optional description of the planner item"
					}
				},
				"required": ["type", "title"]
			}
		}
	},
	"required": ["items"]
}`)

var plannerTools = []Tool{{
	Type: "function",
	Function: ToolFunction{
		Name:        "add_planner_items",
		Description: "Add items to the planner based on user request",
		Parameters:  plannerToolParams,
	},
}}

// ChatResult is the outcome of one planner chat completion.
type ChatResult struct {
	// ToolCalled is true when the model invoked add_planner_items and its
	// arguments decoded cleanly; Items holds them (possibly empty).
	ToolCalled bool
	// ToolParseFailed is true when the model invoked the tool but its
	// arguments were not valid JSON.
	ToolParseFailed bool
	Items           []model.PlannerItem
	// Content is the model's free-text reply, when it gave one.
	Content string
}

type plannerToolArgs struct {
	Items []struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		Time        string `json:"time"`
		Description string `json:"description"`
	} `json:"items"`
}

// PlannerChat sends the conversation with the add_planner_items tool
// offered and interprets the reply: a tool invocation, free text, or
// neither.
func (c *Client) PlannerChat(ctx context.Context, messages []Message) (ChatResult, error) {
	resp, err := c.chatCompletion(ctx, messages, plannerTools, defaultTemperature, defaultMaxTokens)
	if err != nil {
		return ChatResult{}, err
	}

	var res ChatResult
	if len(resp.Choices) == 0 {
		return res, nil
	}
	msg := resp.Choices[0].Message

	if len(msg.ToolCalls) > 0 && msg.ToolCalls[0].Function.Name == "add_planner_items" {
		var args plannerToolArgs
		if err := json.Unmarshal([]byte(msg.ToolCalls[0].Function.Arguments), &args); err != nil {
			res.ToolParseFailed = true
			return res, nil
		}
		res.ToolCalled = true
		res.Items = make([]model.PlannerItem, 0, len(args.Items))
		for _, it := range args.Items {
			item := model.PlannerItem{
				Type:        it.Type,
				Title:       it.Title,
				Description: it.Description,
			}
			if it.Type == model.ItemEvent && it.Time != "" {
				t := it.Time
				item.Time = &t
			}
			res.Items = append(res.Items, item)
		}
		return res, nil
	}

	res.Content = msg.Content
	return res, nil
}
