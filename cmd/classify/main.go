package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/devaki264/cs-agent-workflow-engine/internal/ai"
	"github.com/devaki264/cs-agent-workflow-engine/internal/config"
	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
	"github.com/devaki264/cs-agent-workflow-engine/internal/service"
	"github.com/devaki264/cs-agent-workflow-engine/internal/tickets"
)

func main() {
	cmd := &cli.Command{
		Name:  "classify",
		Usage: "Classify customer support tickets from a JSON file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON file with tickets",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "Gemini model name",
			},
			&cli.BoolFlag{
				Name:  "mock",
				Usage: "Use the deterministic mock classifier instead of Gemini",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := cmd.String("file")
	if path == "" {
		path = cfg.SampleTicketsPath
	}
	model := cmd.String("model")
	if model == "" {
		model = cfg.GeminiModel
	}

	batch, err := tickets.LoadFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Loaded %d tickets from %s\n", len(batch), path)

	var classifier ai.Classifier
	if cmd.Bool("mock") || cfg.AIProvider == "mock" {
		classifier = ai.NewMockClassifier()
		fmt.Println("✓ Using mock classifier")
	} else {
		gemini, err := ai.NewGeminiClassifier(ctx, cfg.GeminiAPIKey, model)
		if err != nil {
			return err
		}
		defer gemini.Close()
		classifier = gemini
		fmt.Printf("✓ Classifier initialized (%s)\n", model)
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).Output(zerolog.ConsoleWriter{Out: os.Stderr})

	processor := service.BatchService{Classifier: classifier, Logger: logger}
	results := processor.ProcessBatch(ctx, batch)

	for _, r := range results {
		printResult(r)
	}

	fmt.Printf("\n%d/%d tickets classified successfully\n", service.SuccessCount(results), len(results))
	return nil
}

func printResult(r models.ClassificationResult) {
	if !r.Success {
		fmt.Printf("❌ %s - ERROR: %s\n", r.TicketID, r.Error)
		return
	}

	line := strings.Repeat("=", 80)
	c := r.Classification

	fmt.Printf("\n%s\n", line)
	fmt.Printf("✓ %s\n", r.TicketID)
	fmt.Println(line)
	fmt.Printf("📁 Category:     %s\n", c.Category)
	fmt.Printf("⚡ Priority:     %s\n", c.Priority)
	fmt.Printf("🎯 Confidence:   %.0f%%\n", c.Confidence*100)

	if c.ShouldEscalate {
		target := ""
		if c.EscalateTo != nil {
			target = *c.EscalateTo
		}
		fmt.Printf("🚨 ESCALATE:     YES → %s\n", target)
	} else {
		fmt.Println("✅ RESOLVE:      Handle autonomously")
	}

	fmt.Printf("💭 Reasoning:    %s\n", c.Reasoning)
	fmt.Printf("🏷️  Tags:         %s\n", strings.Join(c.SuggestedTags, ", "))
	fmt.Println(line)
}
