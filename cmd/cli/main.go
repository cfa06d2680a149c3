package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"chartscout/adapters/tabular"
	"chartscout/app"
	"chartscout/internal/config"
	"chartscout/ports"
)

func main() {
	outDir := flag.String("out", ".", "directory for generated reports")
	format := flag.String("format", "md", "report format: md or json")
	workers := flag.Int("workers", 4, "number of files analyzed concurrently")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cli [-out dir] [-format md|json] [-workers n] file.csv [file.xlsx ...]")
		os.Exit(2)
	}
	if *format != "md" && *format != "json" {
		log.Fatalf("unsupported format %q", *format)
	}

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	service := app.NewAnalysisService(cfg)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			return analyzeFile(ctx, service, file, *outDir, *format)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}

func analyzeFile(ctx context.Context, service *app.AnalysisService, file, outDir, format string) error {
	var reader ports.TabularReader = tabular.NewReader(file)
	ds, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	result, err := service.Analyze(ctx, ds)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	var outPath string
	var payload []byte
	switch format {
	case "json":
		outPath = filepath.Join(outDir, base+".report.json")
		payload, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("%s: encoding report: %w", file, err)
		}
	default:
		outPath = filepath.Join(outDir, base+".report.md")
		payload = []byte(result.ReportMarkdown)
	}

	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return fmt.Errorf("%s: writing report: %w", file, err)
	}
	log.Printf("%s: %d charts (%s industry) -> %s",
		file, len(result.Charts), result.Insights.Industry, outPath)
	return nil
}
