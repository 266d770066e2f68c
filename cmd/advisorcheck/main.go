package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/wolfman30/tas-beauty-lounge/cmd/mainconfig"
	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	appconfig "github.com/wolfman30/tas-beauty-lounge/internal/config"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

func main() {
	concern := flag.String("concern", "dull skin before a wedding", "concern to send to the consultation widget")
	skin := flag.String("skin", "normal", "skin type: dry, oily, combination, normal, sensitive")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)

	skinType, err := advisor.ParseSkinType(*skin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	gen, err := mainconfig.LoadGenerator(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if gen == nil {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY not set")
		os.Exit(1)
	}
	defer gen.Close()

	failed := false

	fmt.Printf("[1] Consultation (%s skin): %q\n", skinType, *concern)
	consultant := advisor.NewConsultant(gen, cfg.GeminiConsultModel, cfg.GeminiTimeout, nil, logger)
	start := time.Now()
	result, err := consultant.Consult(ctx, *concern, skinType)
	if err != nil {
		fmt.Printf("    FAIL: %v\n", err)
		failed = true
	} else {
		fmt.Printf("    ok (%v)\n", time.Since(start).Round(time.Millisecond))
		printJSON(result)
	}

	fmt.Printf("\n[2] Location insights for %s\n", cfg.LoungeAddress)
	insights := advisor.NewInsightsFetcher(gen, nil, advisor.InsightsConfig{
		Model:   cfg.GeminiLocationModel,
		Address: cfg.LoungeAddress,
		Timeout: cfg.GeminiTimeout,
	}, nil, logger)
	start = time.Now()
	area, err := insights.Fetch(ctx)
	if err != nil {
		fmt.Printf("    FAIL: %v\n", err)
		failed = true
	} else {
		fmt.Printf("    ok (%v)\n", time.Since(start).Round(time.Millisecond))
		printJSON(area)
	}

	if failed {
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "    ", "  ")
	if err != nil {
		fmt.Printf("    (unprintable: %v)\n", err)
		return
	}
	fmt.Printf("    %s\n", out)
}
