package groq

// Role values accepted by the chat completion API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

type ChatCompletionRequest struct {
	Model string `json:"model"`

	Messages []Message `json:"messages"`
	Tools    []Tool    `json:"tools,omitempty"`

	MaxTokens   *int     `json:"max_tokens,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
	TopP        *float32 `json:"top_p,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}

type Message struct {
	Role       string     `json:"role"`
	Content    *string    `json:"content,omitempty"`
	Name       string     `json:"name,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// Text returns the message content, or "" when the model produced none.
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

func System(text string) Message {
	return Message{Role: RoleSystem, Content: &text}
}

func User(text string) Message {
	return Message{Role: RoleUser, Content: &text}
}

func Assistant(text string) Message {
	return Message{Role: RoleAssistant, Content: &text}
}

type ToolCall struct {
	ID       string           `json:"id,omitempty"`
	Type     string           `json:"type,omitempty"`
	Function ToolCallFunction `json:"function"`
}

type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type ChatCompletion struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`

	Choices []Choice `json:"choices"`

	// Usage is omitted by some providers; token accessors treat that as zero.
	Usage *Usage `json:"usage,omitempty"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// FirstMessage returns the first choice's message. The zero Message is
// returned when the response carries no choices.
func (c *ChatCompletion) FirstMessage() Message {
	if c == nil || len(c.Choices) == 0 {
		return Message{}
	}
	return c.Choices[0].Message
}

// Text returns the first choice's content.
func (c *ChatCompletion) Text() string {
	return c.FirstMessage().Text()
}

// TotalTokens returns the total token usage, or 0 when usage was not reported.
func (c *ChatCompletion) TotalTokens() int {
	if c == nil || c.Usage == nil {
		return 0
	}
	return c.Usage.TotalTokens
}
