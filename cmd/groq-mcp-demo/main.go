// Command groq-mcp-demo runs four chat completion demos against Groq's
// OpenAI-compatible API, attaching remote MCP servers for web content
// retrieval and model discovery.
//
// Usage:
//
//	GROQ_API_KEY=gsk_... groq-mcp-demo
//
// Optional:
//
//	FIRECRAWL_API_KEY=fc-... groq-mcp-demo
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bitop-dev/groq"
	"github.com/bitop-dev/groq/internal/config"
	"github.com/bitop-dev/groq/internal/demo"
)

var rule = strings.Repeat("=", 60)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, config.ErrAPIKeyMissing) {
			printUsage(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "❌ Fatal error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.LogLevel)

	client := groq.NewClient(groq.Config{
		APIKey: cfg.GroqAPIKey,
		Logger: &logger,
	})
	tools := demo.BuildTools(cfg.FirecrawlAPIKey)

	printBanner(os.Stdout, cfg)

	runner := &demo.Runner{
		Client:           client,
		Model:            cfg.Model,
		Tools:            tools,
		FirecrawlEnabled: cfg.FirecrawlEnabled(),
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
	}
	runner.Run(context.Background())

	printSummary(os.Stdout)
	return nil
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "❌ Error: GROQ_API_KEY environment variable is required")
	fmt.Fprintln(w, "   Get your API key from https://console.groq.com/keys")
	fmt.Fprintln(w, "   Usage: GROQ_API_KEY=gsk_... groq-mcp-demo")
}

func printBanner(w *os.File, cfg config.Config) {
	fmt.Fprintln(w, "🚀 Groq MCP Demo - Go")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Model: %s\n", cfg.Model)
	fmt.Fprintln(w, "Groq API: Configured ✓")
	fmt.Fprintln(w, "Huggingface MCP: Enabled ✓")
	if cfg.FirecrawlEnabled() {
		fmt.Fprintln(w, "Firecrawl MCP: Enabled ✓")
	} else {
		fmt.Fprintln(w, "Firecrawl MCP: Disabled (no API key)")
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func printSummary(w *os.File) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "✅ All demos completed successfully!")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  - Set FIRECRAWL_API_KEY to enable web scraping")
	fmt.Fprintln(w, "  - Try different models (llama-3.1-8b-instant, etc.)")
	fmt.Fprintln(w, "  - Set GROQ_LOG_LEVEL=debug for request diagnostics")
	fmt.Fprintln(w, rule)
}

func setupLogger(level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(parseLogLevel(level)).
		With().Timestamp().Logger()
}

func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
