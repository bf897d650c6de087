package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cognicore/farahidi/pkg/farahidi"
	"github.com/cognicore/farahidi/pkg/farahidi/config"
	"github.com/cognicore/farahidi/pkg/farahidi/poem"
)

func main() {
	var (
		text          = flag.String("text", "", "One hemistich to scan (non-interactive mode)")
		filePath      = flag.String("file", "", "Poem file, one verse per line")
		htmlPath      = flag.String("html", "", "HTML page holding a poem")
		cataloguePath = flag.String("catalogue", "", "Custom catalogue YAML (optional)")
		configPath    = flag.String("config", "", "Engine settings YAML (optional)")
		asJSON        = flag.Bool("json", false, "Print results as JSON")
		workers       = flag.Int("workers", 4, "Concurrent hemistich analyses for poems")
	)
	flag.Parse()

	if *workers < 1 {
		log.Fatal("--workers must be at least 1")
	}
	if *filePath != "" && *htmlPath != "" {
		log.Fatal("--file and --html are mutually exclusive")
	}

	engine, err := buildEngine(*cataloguePath, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// One-shot hemistich mode
	if *text != "" {
		if err := executeText(os.Stdout, engine, *text, *asJSON); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Poem mode
	if *filePath != "" || *htmlPath != "" {
		body, err := readPoem(*filePath, *htmlPath)
		if err != nil {
			log.Fatal(err)
		}
		analyzer := poem.NewAnalyzer(engine, *workers)
		if err := executePoem(ctx, os.Stdout, analyzer, body, *asJSON); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Interactive mode
	fmt.Println("===========================================")
	fmt.Println("  Farahidi")
	fmt.Println("  Arabic prosody scansion")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Type a diacritized hemistich (Ctrl+D to exit):")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if err := executeText(os.Stdout, engine, line, *asJSON); err != nil {
			fmt.Println("Error:", err)
		}
	}

	fmt.Println("\nGoodbye!")
}

func buildEngine(cataloguePath, configPath string) (*farahidi.Engine, error) {
	loader := config.Loader{
		CataloguePath: cataloguePath,
		ConfigPath:    configPath,
	}

	components, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return farahidi.New(farahidi.Options{
		Catalogue: components.Catalogue,
		Config:    components.Engine,
	}), nil
}

func readPoem(filePath, htmlPath string) (string, error) {
	if htmlPath != "" {
		f, err := os.Open(htmlPath)
		if err != nil {
			return "", fmt.Errorf("open html: %w", err)
		}
		defer f.Close()
		return poem.FromHTML(f)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read poem: %w", err)
	}
	return string(data), nil
}

func executeText(w io.Writer, engine *farahidi.Engine, text string, asJSON bool) error {
	res := engine.Analyze(text)
	if asJSON {
		return writeJSON(w, res)
	}
	printResult(w, res)
	return nil
}

func executePoem(ctx context.Context, w io.Writer, analyzer *poem.Analyzer, text string, asJSON bool) error {
	report, err := analyzer.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze poem: %w", err)
	}
	if asJSON {
		return writeJSON(w, report)
	}
	printReport(w, report)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func printResult(w io.Writer, res farahidi.ScansionResult) {
	fmt.Fprintf(w, "\nText:     %s\n", res.OriginalText)
	fmt.Fprintf(w, "ʿArūḍī:   %s\n", res.ArudiText)
	fmt.Fprintf(w, "Skeleton: %s\n", res.Skeleton)

	if len(res.Feet) == 0 {
		fmt.Fprintln(w, "No feet found.")
	} else {
		fmt.Fprintln(w, "\nFeet:")
		for i, f := range res.Feet {
			mark := "canonical"
			if f.License != nil {
				mark = f.License.Name
			}
			fmt.Fprintf(w, "  %d. %-12s %-8s %s (%s)\n", i+1, f.Name, f.Pattern, f.Letters, mark)
		}
	}
	if len(res.Unscanned) > 0 {
		fmt.Fprintf(w, "  Unscanned positions: %v\n", res.Unscanned)
	}

	fmt.Fprintln(w)
	if res.Meter == nil {
		fmt.Fprintln(w, "Meter: none")
	} else {
		m := res.Meter
		fmt.Fprintf(w, "Meter: %s (%s), %s, score %.2f [%s]\n", m.Meter, m.Arabic, m.SubForm, m.Score, m.Status)
		fmt.Fprintf(w, "  Expected: %s\n", strings.Join(m.Expected, " "))
	}

	if len(res.Faults) > 0 {
		fmt.Fprintln(w, "\nFaults:")
		for _, f := range res.Faults {
			fmt.Fprintf(w, "  • foot %d %s: %s (%s)\n", f.FootIndex+1, f.Foot, f.Description, f.Severity)
		}
	}

	fmt.Fprintf(w, "\nConfidence: %.2f\n", res.Confidence)
	if res.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", res.Suggestion)
	}
}

func printReport(w io.Writer, report poem.Report) {
	fmt.Fprintf(w, "Report %s\n", report.ID)
	fmt.Fprintln(w, "===========================================")

	for _, l := range report.Lines {
		meter := "none"
		if l.Result.Meter != nil {
			meter = l.Result.Meter.Meter
		}
		fmt.Fprintf(w, "%3d %-6s %-40s %-14s %6.2f\n", l.Verse+1, l.Position, l.Text, meter, l.Result.Confidence)
	}

	fmt.Fprintln(w)
	if report.UnifiedMeter == "" {
		fmt.Fprintln(w, "Unified meter: none")
	} else {
		fmt.Fprintf(w, "Unified meter: %s (%s)\n", report.UnifiedMeter, report.SubForm)
	}
	fmt.Fprintf(w, "Overall confidence: %.2f\n", report.OverallConfidence)
}
