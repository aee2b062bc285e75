// Moth-Bench — benchmark client for /v1/chat/completions-compatible LLM
// endpoints.
//
// Usage:
//
//	mothbench run        # run the battery and export an HTML scorecard
//	mothbench catalog    # list the prompt battery
//	mothbench version    # show version
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mothbench/mothbench/internal/benchcfg"
	"github.com/mothbench/mothbench/pkg/bench"
	"github.com/mothbench/mothbench/pkg/catalog"
	"github.com/mothbench/mothbench/pkg/refs"
	"github.com/mothbench/mothbench/pkg/score"
	"github.com/mothbench/mothbench/pkg/scorecard"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mothbench",
		Short: "Moth-themed latency and quality benchmark for LLM endpoints",
		Long: "Moth-Bench drives a fixed battery of 43 moth-themed prompts against a " +
			"chat-completions endpoint, grades latency and answer quality, and exports " +
			"a standalone HTML scorecard with a leaderboard.",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		endpoint  string
		maxTokens int
		system    string
		outPath   string
		pngPath   string
		refsPath  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full battery and export the scorecard",
		Long: "Runs every prompt sequentially (one in-flight request at a time), prints " +
			"per-item progress, and writes a self-contained HTML scorecard. " +
			"Ctrl-C cancels cooperatively: the current request finishes first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := benchcfg.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if endpoint != "" {
				cfg.Bench.BaseURL = endpoint
			}
			if maxTokens > 0 {
				cfg.Bench.MaxTokens = maxTokens
			}
			if cmd.Flags().Changed("system") {
				cfg.Bench.SystemPrompt = system
			}
			if refsPath != "" {
				cfg.Refs = refsPath
			}
			cfg.Bench.Normalize()

			return runBattery(cfg, outPath, pngPath)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "endpoint base URL (e.g. http://127.0.0.1:8081/v1)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "max tokens per answer")
	cmd.Flags().StringVar(&system, "system", "", "system prompt (empty disables the system message)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "scorecard.html", "HTML scorecard output path")
	cmd.Flags().StringVar(&pngPath, "png", "", "also write a PNG summary badge to this path")
	cmd.Flags().StringVar(&refsPath, "refs", "", "reference leaderboard JSON file")
	return cmd
}

func runBattery(cfg benchcfg.Config, outPath, pngPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scorer := score.Default()
	if cfg.Rubrics != "" {
		var err error
		if scorer, err = score.Load(cfg.Rubrics); err != nil {
			fmt.Printf("⚠️  %v (using built-in rubrics)\n", err)
		}
	}

	items := catalog.Items()
	fmt.Printf("⚡ MOTH-BENCH against %s (%d tests, max_tokens=%d)\n",
		cfg.Bench.BaseURL, len(items), cfg.Bench.MaxTokens)
	fmt.Println("   Ctrl-C cancels after the current test finishes.")

	attempted := 0
	runner := bench.New(cfg.Bench, scorer)
	runner.OnProgress = func(i, total int, res bench.Result) {
		attempted++
		fmt.Printf("[%2d/%d] %-8s | %-18s %s\n", i+1, total, res.Category, res.Name, progressLabel(res))
	}

	sum, err := runner.Execute(ctx, items)
	for i := attempted; i < len(items); i++ {
		fmt.Printf("[%2d/%d] %-8s | %-18s %s\n", i+1, len(items), items[i].Category, items[i].Name, bench.StatusSkipped)
	}
	if err != nil {
		if errors.Is(err, bench.ErrNoSuccess) {
			return errors.New("no test succeeded — check the endpoint; nothing to export")
		}
		return err
	}

	fmt.Printf("\nDONE: %s | AVG: %.2fs | QUALITY: %.1f/10 | SUCCESS: %d/%d\n",
		sum.Grade, sum.AvgSeconds, sum.AvgQuality, sum.Success, sum.Total)

	refsFile := cfg.Refs
	if refsFile == "" {
		refsFile = refs.DefaultFile
	}
	entries := refs.Load(refsFile, sum.AvgSeconds)

	doc := scorecard.RenderHTML(sum, entries)
	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write scorecard: %w", err)
	}
	fmt.Printf("🌐 Scorecard written to %s\n", outPath)

	if pngPath != "" {
		if err := scorecard.NewImageRenderer().RenderPNG(sum, entries, pngPath); err != nil {
			return fmt.Errorf("write badge: %w", err)
		}
		fmt.Printf("🖼  Badge written to %s\n", pngPath)
	}
	return nil
}

func progressLabel(res bench.Result) string {
	switch res.Status {
	case bench.StatusOK:
		return fmt.Sprintf("✅ %.2fs (quality %d/10)", res.Elapsed.Seconds(), *res.Quality)
	case bench.StatusHTTPError:
		return fmt.Sprintf("⚠️ E%d", res.HTTPCode)
	case bench.StatusTransportError:
		return fmt.Sprintf("❌ %s", res.ErrKind)
	default:
		return string(res.Status)
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the prompt battery",
		Run: func(cmd *cobra.Command, args []string) {
			groups := catalog.ByCategory()
			for _, meta := range catalog.Categories {
				items := groups[meta.ID]
				if len(items) == 0 {
					continue
				}
				fmt.Printf("%s (%d)\n", meta.Label, len(items))
				for _, it := range items {
					fmt.Printf("  %-18s %s\n", it.Name, it.Question)
				}
				fmt.Println()
			}
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mothbench %s\n", version)
		},
	}
}
