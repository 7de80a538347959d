// Package demo runs the four Groq remote-MCP demonstration routines.
package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitop-dev/groq"
)

// Remote MCP servers the demos attach.
const (
	HuggingFaceMCPURL = "https://huggingface.co/mcp"
	FirecrawlMCPURL   = "https://mcp.firecrawl.dev/"
)

// Client is the slice of the Groq SDK the routines use. Tests substitute a
// fake.
type Client interface {
	CreateChatCompletion(ctx context.Context, req groq.ChatCompletionRequest) (*groq.ChatCompletion, error)
}

// BuildTools returns the tool descriptors in addition order: the Hugging Face
// MCP server first, Firecrawl appended only when its API key is configured.
func BuildTools(firecrawlKey string) []groq.Tool {
	tools := []groq.Tool{groq.MCPTool(HuggingFaceMCPURL)}
	if firecrawlKey != "" {
		tools = append(tools, groq.MCPTool(FirecrawlMCPURL).WithBearer(firecrawlKey))
	}
	return tools
}

// Runner executes the demo routines against a configured client. Stdout
// carries demo output, Stderr error reports.
type Runner struct {
	Client Client
	Model  string
	Tools  []groq.Tool

	FirecrawlEnabled bool

	Stdout io.Writer
	Stderr io.Writer
}

var separator = strings.Repeat("-", 60)

// Run invokes the four routines in order. Every routine recovers from its own
// request failure, so Run always completes.
func (r *Runner) Run(ctx context.Context) {
	r.SimpleCompletion(ctx)
	r.MCPCompletion(ctx)
	r.DiscoverTools(ctx)
	r.FirecrawlScrape(ctx)
}

// SimpleCompletion is demo 1: a plain completion without MCP tools.
func (r *Runner) SimpleCompletion(ctx context.Context) {
	fmt.Fprintln(r.Stdout, "📝 Demo 1: Simple Chat Completion (No MCP)")
	fmt.Fprintln(r.Stdout, separator)
	defer fmt.Fprintln(r.Stdout)

	maxTokens := 150
	resp, err := r.Client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: r.Model,
		Messages: []groq.Message{
			groq.User("Write a 4-line rap verse about artificial intelligence."),
		},
		MaxTokens: &maxTokens,
	})
	if err != nil {
		r.reportError(err)
		if groq.IsAuth(err) {
			fmt.Fprintln(r.Stderr, "   Check your GROQ_API_KEY")
		}
		return
	}

	fmt.Fprintln(r.Stdout, "Response:")
	fmt.Fprintln(r.Stdout, resp.Text())
	fmt.Fprintln(r.Stdout)
	fmt.Fprintf(r.Stdout, "✓ Completed in %d tokens\n", resp.TotalTokens())
}

// MCPCompletion is demo 2: a completion with all configured MCP tools,
// printing any reasoning text, the individual tool calls, and the final
// message.
func (r *Runner) MCPCompletion(ctx context.Context) {
	fmt.Fprintln(r.Stdout, "🔧 Demo 2: Chat Completion with MCP Tools")
	fmt.Fprintln(r.Stdout, separator)
	defer fmt.Fprintln(r.Stdout)

	maxTokens := 500
	resp, err := r.Client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: r.Model,
		Messages: []groq.Message{
			groq.User("What are some popular open-source language models on Hugging Face? List 3 with brief descriptions."),
		},
		Tools:     r.Tools,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		r.reportError(err)
		if groq.IsAuth(err) {
			fmt.Fprintln(r.Stderr, "   Check your GROQ_API_KEY")
		}
		if groq.IsMCPDependencyFailed(err) {
			fmt.Fprintln(r.Stderr, "   MCP server dependency failed")
			fmt.Fprintln(r.Stderr, "   Check that MCP servers are reachable")
		}
		return
	}

	msg := resp.FirstMessage()

	if text := msg.Text(); text != "" {
		fmt.Fprintln(r.Stdout, "Model Reasoning:")
		fmt.Fprintln(r.Stdout, text)
		fmt.Fprintln(r.Stdout)
	}

	if len(msg.ToolCalls) > 0 {
		fmt.Fprintln(r.Stdout, "🔧 MCP Tool Calls:")
		for i, tc := range msg.ToolCalls {
			name := tc.Function.Name
			if name == "" {
				name = tc.Type
			}
			fmt.Fprintf(r.Stdout, "\n  %d. %s\n", i+1, name)
			if tc.Function.Arguments != "" {
				fmt.Fprintf(r.Stdout, "     Arguments: %s\n", indentArguments(tc.Function.Arguments))
			}
		}
		fmt.Fprintln(r.Stdout)
	}

	fmt.Fprintln(r.Stdout, "Final Message:")
	fmt.Fprintln(r.Stdout, formatJSON(msg))
	fmt.Fprintln(r.Stdout)
	fmt.Fprintf(r.Stdout, "✓ Completed in %d tokens\n", resp.TotalTokens())
}

// DiscoverTools is demo 3: asking the model what tools it can reach.
func (r *Runner) DiscoverTools(ctx context.Context) {
	fmt.Fprintln(r.Stdout, "🔍 Demo 3: Tool Discovery")
	fmt.Fprintln(r.Stdout, separator)
	defer fmt.Fprintln(r.Stdout)

	maxTokens := 300
	resp, err := r.Client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: r.Model,
		Messages: []groq.Message{
			groq.User("What tools do you have access to? Please list them."),
		},
		Tools:     r.Tools,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		r.reportError(err)
		return
	}

	fmt.Fprintln(r.Stdout, "Response:")
	fmt.Fprintln(r.Stdout, resp.Text())
	fmt.Fprintln(r.Stdout)
	fmt.Fprintf(r.Stdout, "✓ Completed in %d tokens\n", resp.TotalTokens())
}

// FirecrawlScrape is demo 4: web scraping through the Firecrawl MCP server.
// Without a Firecrawl key it prints a skip notice and issues no request.
func (r *Runner) FirecrawlScrape(ctx context.Context) {
	if !r.FirecrawlEnabled {
		fmt.Fprintln(r.Stdout, "⏭️  Demo 4: Skipped (Firecrawl not configured)")
		fmt.Fprintln(r.Stdout, "   Set FIRECRAWL_API_KEY to enable web scraping demo")
		fmt.Fprintln(r.Stdout)
		return
	}

	fmt.Fprintln(r.Stdout, "🌐 Demo 4: Firecrawl MCP Web Scraping")
	fmt.Fprintln(r.Stdout, separator)
	defer fmt.Fprintln(r.Stdout)

	maxTokens := 400
	resp, err := r.Client.CreateChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: r.Model,
		Messages: []groq.Message{
			groq.User("Can you scrape the latest news from a tech website and summarize the top story?"),
		},
		Tools:     r.Tools,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		r.reportError(err)
		if groq.IsMCPDependencyFailed(err) {
			fmt.Fprintln(r.Stderr, "   Firecrawl MCP server failed")
			fmt.Fprintln(r.Stderr, "   Check your FIRECRAWL_API_KEY")
		}
		return
	}

	msg := resp.FirstMessage()

	fmt.Fprintln(r.Stdout, "Response:")
	if text := msg.Text(); text != "" {
		fmt.Fprintln(r.Stdout, text)
	} else {
		fmt.Fprintln(r.Stdout, formatJSON(msg))
	}
	fmt.Fprintln(r.Stdout)
	fmt.Fprintf(r.Stdout, "✓ Completed in %d tokens\n", resp.TotalTokens())
}

func (r *Runner) reportError(err error) {
	fmt.Fprintf(r.Stderr, "❌ Error: %v\n", err)
}

// indentArguments pretty-prints a tool call's JSON arguments, aligning
// continuation lines under the "Arguments:" label. Invalid JSON is returned
// verbatim.
func indentArguments(raw string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "     ", "  "); err != nil {
		return raw
	}
	return buf.String()
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
