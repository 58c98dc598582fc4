// Command analyze classifies review texts from the command line or a file,
// one review per line, and prints per-item results plus the batch sentiment
// aggregate.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	analyzer "github.com/FrenchMajesty/aspect-classifier"
	"github.com/FrenchMajesty/aspect-classifier/adapters"
)

func main() {
	var (
		file        = flag.String("file", "", "read reviews from a file, one per line")
		baseline    = flag.Bool("baseline", false, "also run the baseline variant")
		vader       = flag.Bool("vader", false, "use the VADER engine as the baseline variant")
		concurrency = flag.Int("concurrency", 0, "max concurrent classifications (0 = default)")
		asJSON      = flag.Bool("json", false, "print the raw batch response as JSON")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	// A .env file is optional; fall back to the process environment
	_ = godotenv.Load()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	texts, err := collectTexts(*file, flag.Args())
	if err != nil {
		logger.Error("failed to read input", slog.Any("error", err))
		os.Exit(1)
	}
	if len(texts) == 0 {
		fmt.Fprintln(os.Stderr, "usage: analyze [flags] \"review text\" [\"more text\" ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := analyzer.Config{Logger: logger}
	if *vader {
		cfg.Baseline = adapters.NewVaderClassifier()
	}
	a := analyzer.NewAnalyzer(cfg)

	items := make([]analyzer.Item, len(texts))
	for i, t := range texts {
		items[i] = analyzer.Item{Text: t} // IDs are auto-assigned
	}

	resp, err := a.AnalyzeBatch(context.Background(), analyzer.BatchRequest{
		Items:           items,
		IncludeBaseline: *baseline || *vader,
		MaxConcurrency:  *concurrency,
	})
	if err != nil {
		logger.Error("analysis failed", slog.Any("error", err))
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	printReport(texts, resp)
}

// collectTexts gathers review texts from a file and/or positional arguments,
// skipping blank lines.
func collectTexts(file string, args []string) ([]string, error) {
	var texts []string

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				texts = append(texts, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	for _, arg := range args {
		if strings.TrimSpace(arg) != "" {
			texts = append(texts, arg)
		}
	}

	return texts, nil
}

func printReport(texts []string, resp *analyzer.BatchResponse) {
	for i, r := range resp.Results {
		rec := r.RAG[0]
		fmt.Printf("%-8s %-8s %4.0f%%  %s\n", rec.Aspect, rec.Sentiment, rec.Confidence*100, truncate(texts[i], 60))
		for _, b := range r.Baseline {
			fmt.Printf("  baseline: %-8s %-8s %4.0f%%  (%s)\n", b.Aspect, b.Sentiment, b.Confidence*100, b.Reasoning)
		}
	}

	c := resp.Aggregate.RAGCounts
	fmt.Printf("\n%d positive / %d negative / %d neutral in %dms\n",
		c.Positive, c.Negative, c.Neutral, resp.ProcessingTimeMS)
}

// truncate shortens s to at most n runes, never splitting a multi-byte
// character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
