package groq

import (
	"encoding/json"
	"fmt"

	"github.com/bitop-dev/groq/internal/schema"
)

const (
	// ToolTypeMCP marks a remote MCP server the provider invokes on the
	// model's behalf.
	ToolTypeMCP = "mcp"
	// ToolTypeFunction marks a caller-defined function tool.
	ToolTypeFunction = "function"
)

// Tool describes one entry of a request's tool list. Exactly one of the
// MCP fields (ServerURL, Headers) or Function is populated, keyed by Type.
type Tool struct {
	Type string `json:"type"`

	ServerURL string            `json:"server_url,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`

	Function *ToolFunction `json:"function,omitempty"`
}

type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// MCPTool returns a remote MCP tool descriptor for the given server URL.
func MCPTool(serverURL string) Tool {
	return Tool{Type: ToolTypeMCP, ServerURL: serverURL}
}

// WithHeader returns a copy of the tool carrying an extra request header for
// the MCP server. The receiver is not mutated.
func (t Tool) WithHeader(key, value string) Tool {
	headers := make(map[string]string, len(t.Headers)+1)
	for k, v := range t.Headers {
		headers[k] = v
	}
	headers[key] = value
	t.Headers = headers
	return t
}

// WithBearer returns a copy of the tool with a bearer-token Authorization
// header.
func (t Tool) WithBearer(token string) Tool {
	return t.WithHeader("Authorization", "Bearer "+token)
}

// FunctionTool returns a function tool descriptor. Parameters must be a JSON
// Schema document (or nil for tools without arguments).
func FunctionTool(name, description string, parameters json.RawMessage) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: &ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// ValidateArgs checks raw tool-call arguments against the tool's parameter
// schema. Tools without a schema accept anything.
func (t Tool) ValidateArgs(args json.RawMessage) error {
	if t.Function == nil {
		return nil
	}
	return schema.Validate(t.Function.Parameters, args)
}

func validateTool(t Tool) error {
	switch t.Type {
	case ToolTypeMCP:
		if t.ServerURL == "" {
			return fmt.Errorf("mcp tool requires a server URL")
		}
	case ToolTypeFunction:
		if t.Function == nil || t.Function.Name == "" {
			return fmt.Errorf("function tool requires a name")
		}
		if err := schema.Compile(t.Function.Parameters); err != nil {
			return fmt.Errorf("function tool %q: %w", t.Function.Name, err)
		}
	default:
		return fmt.Errorf("unsupported tool type %q", t.Type)
	}
	return nil
}
