package bot

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Tool describes a function a bot may call during a conversation. The input
// schema is a raw JSON Schema string to stay agnostic of any particular
// schema library; clients forward it verbatim.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	InputSchema string `json:"input_schema"`
}

// InputSchemaJSON parses the raw input schema into a generic JSON object.
func (t Tool) InputSchemaJSON() (map[string]any, error) {
	var schema map[string]any
	if err := json.Unmarshal([]byte(t.InputSchema), &schema); err != nil {
		return nil, fmt.Errorf("error parsing tool input schema: %w", err)
	}
	return schema, nil
}

// ToolCallPermission is the user's decision about executing a tool call.
type ToolCallPermission string

const (
	// ToolCallPending means the call is waiting for a user decision.
	ToolCallPending ToolCallPermission = "pending"
	// ToolCallApproved means the user approved execution.
	ToolCallApproved ToolCallPermission = "approved"
	// ToolCallDenied means the user denied execution.
	ToolCallDenied ToolCallPermission = "denied"
)

// ToolCall is a function invocation requested by a bot. Arguments is the raw
// JSON string produced by the model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
	// Permission tracks the execution decision. Defaults to pending; the
	// empty string is treated as pending for wire compatibility.
	Permission ToolCallPermission `json:"permission,omitempty"`
}

// ArgumentsJSON parses the call arguments into a JSON object. Models routinely
// emit slightly malformed JSON (single quotes, trailing commas, unquoted
// keys), so a failed parse is retried once after repairing the payload.
func (tc ToolCall) ArgumentsJSON() (map[string]any, error) {
	var arguments map[string]any
	if err := json.Unmarshal([]byte(tc.Arguments), &arguments); err == nil {
		return arguments, nil
	}

	repaired, err := jsonrepair.JSONRepair(tc.Arguments)
	if err != nil {
		return nil, fmt.Errorf("error repairing tool call arguments: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &arguments); err != nil {
		return nil, fmt.Errorf("error parsing tool call arguments after repair: %w", err)
	}
	return arguments, nil
}

// ToolResult is the outcome of executing a tool call, sent back to the bot as
// part of the conversation.
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error,omitempty"`
}
