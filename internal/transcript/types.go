package transcript

import "encoding/json"

// rawLine represents a single line in a Claude Code JSONL transcript.
type rawLine struct {
	Type    string      `json:"type"`
	Message *rawMessage `json:"message,omitempty"`
}

// rawMessage is the message envelope. Content is either a plain string or
// an array of content blocks, so it stays raw until inspected.
type rawMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content,omitempty"`
	Usage   *rawUsage       `json:"usage,omitempty"`
}

// rawUsage holds token counts from the API response.
type rawUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// contentBlock is one element of an array-form content field.
type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
