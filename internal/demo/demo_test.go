package demo

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/bitop-dev/groq"
)

type fakeClient struct {
	requests []groq.ChatCompletionRequest
	respond  func(call int, req groq.ChatCompletionRequest) (*groq.ChatCompletion, error)
}

func (f *fakeClient) CreateChatCompletion(ctx context.Context, req groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
	_ = ctx
	f.requests = append(f.requests, req)
	if f.respond == nil {
		return textCompletion("ok", 1), nil
	}
	return f.respond(len(f.requests)-1, req)
}

func textCompletion(content string, totalTokens int) *groq.ChatCompletion {
	c := &groq.ChatCompletion{
		Choices: []groq.Choice{
			{Message: groq.Message{Role: groq.RoleAssistant, Content: &content}, FinishReason: "stop"},
		},
	}
	if totalTokens > 0 {
		c.Usage = &groq.Usage{TotalTokens: totalTokens}
	}
	return c
}

func newRunner(client Client, firecrawlKey string) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Runner{
		Client:           client,
		Model:            "llama-3.3-70b-versatile",
		Tools:            BuildTools(firecrawlKey),
		FirecrawlEnabled: firecrawlKey != "",
		Stdout:           &stdout,
		Stderr:           &stderr,
	}, &stdout, &stderr
}

func TestBuildTools_PrimaryOnly(t *testing.T) {
	tools := BuildTools("")
	if len(tools) != 1 {
		t.Fatalf("len=%d", len(tools))
	}
	if tools[0].Type != groq.ToolTypeMCP || tools[0].ServerURL != HuggingFaceMCPURL {
		t.Fatalf("tools[0]=%#v", tools[0])
	}
	if len(tools[0].Headers) != 0 {
		t.Fatalf("primary tool should carry no headers: %v", tools[0].Headers)
	}
}

func TestBuildTools_WithFirecrawl(t *testing.T) {
	tools := BuildTools("fc-secret")
	if len(tools) != 2 {
		t.Fatalf("len=%d", len(tools))
	}
	if tools[0].ServerURL != HuggingFaceMCPURL {
		t.Fatalf("tools[0]=%#v", tools[0])
	}
	if tools[1].ServerURL != FirecrawlMCPURL {
		t.Fatalf("tools[1]=%#v", tools[1])
	}
	if got := tools[1].Headers["Authorization"]; got != "Bearer fc-secret" {
		t.Fatalf("Authorization=%q", got)
	}
}

func TestSimpleCompletion_Output(t *testing.T) {
	fc := &fakeClient{respond: func(call int, req groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		if len(req.Tools) != 0 {
			t.Errorf("demo 1 must not attach tools, got %d", len(req.Tools))
		}
		return textCompletion("hello", 42), nil
	}}
	r, stdout, stderr := newRunner(fc, "")

	r.SimpleCompletion(context.Background())

	out := stdout.String()
	if !strings.Contains(out, "hello") {
		t.Fatalf("output missing response text:\n%s", out)
	}
	if !strings.Contains(out, "✓ Completed in 42 tokens") {
		t.Fatalf("output missing token count:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("output must end with a blank line:\n%q", out)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func TestSimpleCompletion_UsageAbsentReportsZero(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		return textCompletion("hello", 0), nil
	}}
	r, stdout, _ := newRunner(fc, "")

	r.SimpleCompletion(context.Background())

	if !strings.Contains(stdout.String(), "✓ Completed in 0 tokens") {
		t.Fatalf("output:\n%s", stdout.String())
	}
}

func TestMCPCompletion_AttachesAllTools(t *testing.T) {
	fc := &fakeClient{}
	r, _, _ := newRunner(fc, "fc-secret")

	r.MCPCompletion(context.Background())

	if len(fc.requests) != 1 {
		t.Fatalf("requests=%d", len(fc.requests))
	}
	if len(fc.requests[0].Tools) != 2 {
		t.Fatalf("tools=%d", len(fc.requests[0].Tools))
	}
}

func TestMCPCompletion_PrintsToolCalls(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		reasoning := "Let me search for that."
		return &groq.ChatCompletion{
			Choices: []groq.Choice{{
				Message: groq.Message{
					Role:    groq.RoleAssistant,
					Content: &reasoning,
					ToolCalls: []groq.ToolCall{
						{ID: "call_1", Type: "function", Function: groq.ToolCallFunction{
							Name:      "model_search",
							Arguments: `{"query":"language models","limit":3}`,
						}},
					},
				},
			}},
			Usage: &groq.Usage{TotalTokens: 77},
		}, nil
	}}
	r, stdout, _ := newRunner(fc, "")

	r.MCPCompletion(context.Background())

	out := stdout.String()
	if !strings.Contains(out, "Model Reasoning:") || !strings.Contains(out, "Let me search for that.") {
		t.Fatalf("missing reasoning:\n%s", out)
	}
	if !strings.Contains(out, "1. model_search") {
		t.Fatalf("missing tool call entry:\n%s", out)
	}
	if !strings.Contains(out, `"query": "language models"`) {
		t.Fatalf("arguments not pretty-printed:\n%s", out)
	}
	if !strings.Contains(out, "Final Message:") {
		t.Fatalf("missing final message:\n%s", out)
	}
	if !strings.Contains(out, "✓ Completed in 77 tokens") {
		t.Fatalf("missing token count:\n%s", out)
	}
}

func TestMCPCompletion_NonJSONArgumentsFallBackToRaw(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		return &groq.ChatCompletion{
			Choices: []groq.Choice{{
				Message: groq.Message{
					Role: groq.RoleAssistant,
					ToolCalls: []groq.ToolCall{
						{Type: "function", Function: groq.ToolCallFunction{
							Name:      "scrape",
							Arguments: "url=https://example.com&mode=fast",
						}},
					},
				},
			}},
		}, nil
	}}
	r, stdout, _ := newRunner(fc, "")

	r.MCPCompletion(context.Background())

	if !strings.Contains(stdout.String(), "Arguments: url=https://example.com&mode=fast") {
		t.Fatalf("raw arguments not printed:\n%s", stdout.String())
	}
}

func TestDiscoverTools_Output(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		return textCompletion("I can reach the Hugging Face MCP server.", 12), nil
	}}
	r, stdout, _ := newRunner(fc, "")

	r.DiscoverTools(context.Background())

	out := stdout.String()
	if !strings.Contains(out, "🔍 Demo 3: Tool Discovery") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "I can reach the Hugging Face MCP server.") {
		t.Fatalf("missing response:\n%s", out)
	}
}

func TestFirecrawlScrape_SkippedWithoutKey(t *testing.T) {
	fc := &fakeClient{}
	r, stdout, _ := newRunner(fc, "")

	r.FirecrawlScrape(context.Background())

	if len(fc.requests) != 0 {
		t.Fatalf("expected no requests, got %d", len(fc.requests))
	}
	out := stdout.String()
	if !strings.Contains(out, "Demo 4: Skipped (Firecrawl not configured)") {
		t.Fatalf("missing skip notice:\n%s", out)
	}
	if !strings.Contains(out, "Set FIRECRAWL_API_KEY to enable web scraping demo") {
		t.Fatalf("missing remediation:\n%s", out)
	}
}

func TestFirecrawlScrape_NoContentDumpsMessage(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		return &groq.ChatCompletion{
			Choices: []groq.Choice{{
				Message: groq.Message{
					Role: groq.RoleAssistant,
					ToolCalls: []groq.ToolCall{
						{Type: "function", Function: groq.ToolCallFunction{Name: "firecrawl_scrape", Arguments: "{}"}},
					},
				},
			}},
		}, nil
	}}
	r, stdout, _ := newRunner(fc, "fc-secret")

	r.FirecrawlScrape(context.Background())

	if !strings.Contains(stdout.String(), `"firecrawl_scrape"`) {
		t.Fatalf("message dump missing:\n%s", stdout.String())
	}
}

func TestRun_ErrorInOneRoutineDoesNotStopOthers(t *testing.T) {
	fc := &fakeClient{respond: func(call int, req groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		if call == 0 {
			return nil, &groq.Error{Status: http.StatusUnauthorized, Code: "invalid_api_key", Message: "Invalid API Key"}
		}
		return textCompletion("ok", 5), nil
	}}
	r, stdout, stderr := newRunner(fc, "fc-secret")

	r.Run(context.Background())

	if len(fc.requests) != 4 {
		t.Fatalf("requests=%d, want all 4 routines to call", len(fc.requests))
	}
	if !strings.Contains(stderr.String(), "❌ Error:") {
		t.Fatalf("stderr missing error line:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Check your GROQ_API_KEY") {
		t.Fatalf("stderr missing auth hint:\n%s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "🌐 Demo 4: Firecrawl MCP Web Scraping") {
		t.Fatalf("demo 4 did not run:\n%s", stdout.String())
	}
}

func TestMCPCompletion_DependencyFailureHint(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		return nil, &groq.Error{Status: http.StatusFailedDependency, Message: "MCP server unreachable"}
	}}
	r, _, stderr := newRunner(fc, "")

	r.MCPCompletion(context.Background())

	if !strings.Contains(stderr.String(), "MCP server dependency failed") {
		t.Fatalf("stderr:\n%s", stderr.String())
	}
}

func TestFirecrawlScrape_DependencyFailureHint(t *testing.T) {
	fc := &fakeClient{respond: func(int, groq.ChatCompletionRequest) (*groq.ChatCompletion, error) {
		return nil, &groq.Error{Status: http.StatusFailedDependency, Message: "MCP server unreachable"}
	}}
	r, _, stderr := newRunner(fc, "fc-secret")

	r.FirecrawlScrape(context.Background())

	if !strings.Contains(stderr.String(), "Firecrawl MCP server failed") {
		t.Fatalf("stderr:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Check your FIRECRAWL_API_KEY") {
		t.Fatalf("stderr:\n%s", stderr.String())
	}
}
