// Package main provides a CLI command for summarizing a single text.
// Usage: summarize [--text "..."] [--output text|json] < input.txt
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"summary-api/internal/config"
	"summary-api/internal/infra/summarizer"
	"summary-api/internal/observability/logging"
	"summary-api/internal/utils/text"
)

// SummaryOutput represents the JSON output format for a summary.
type SummaryOutput struct {
	Provider  string `json:"provider"`
	Summary   string `json:"summary"`
	WordCount int    `json:"word_count"`
}

var errEmptyInput = errors.New("no input text (use --text or pipe text to stdin)")

func main() {
	var (
		input        string
		outputFormat string
	)
	flag.StringVar(&input, "text", "", "Text to summarize (reads stdin when empty)")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.Parse()

	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: Invalid output format '%s' (must be 'text' or 'json')\n", outputFormat)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: summarize [--text \"...\"] [--output text|json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  summarize --text \"Paris is the capital of France.\"")
		fmt.Fprintln(os.Stderr, "  cat article.txt | summarize --output json")
		os.Exit(1)
	}

	// CLI のログは stdout を汚さないよう stderr に出す
	logger := logging.NewLogger(logging.Options{Level: slog.LevelWarn, Format: "text", Output: os.Stderr})
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	provider, err := summarizer.New(cfg.Summarizer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create summarizer: %v\n", err)
		os.Exit(1)
	}

	src, err := readInput(input, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Summarizer.Timeout+5*time.Second)
	defer cancel()

	if err := run(ctx, provider, src, outputFormat, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Summarize failed: %v\n", err)
		os.Exit(1)
	}
}

// readInput returns flagText when set, otherwise all of stdin.
func readInput(flagText string, stdin io.Reader) (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", errEmptyInput
	}
	return string(b), nil
}

// run summarizes input with p and writes the result to w.
func run(ctx context.Context, p summarizer.Provider, input, format string, w io.Writer) error {
	summary, err := p.Summarize(ctx, input)
	if err != nil {
		return err
	}
	summary = strings.TrimSpace(summary)

	if format == "json" {
		return outputJSON(w, SummaryOutput{
			Provider:  p.Name(),
			Summary:   summary,
			WordCount: text.CountWords(summary),
		})
	}
	_, err = fmt.Fprintln(w, summary)
	return err
}

// outputJSON prints the summary in JSON format.
func outputJSON(w io.Writer, out SummaryOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
