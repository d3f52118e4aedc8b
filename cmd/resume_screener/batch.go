package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/analyzer"
	"github.com/jonathan/resume-screener/internal/history"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [resume files...]",
	Short: "Score multiple resumes against one job description and rank them",
	Long:  "Score up to the configured maximum of resume files in parallel against a single job description, then print the candidates ranked best-first.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

var (
	batchJobFile    string
	batchJobTitle   string
	batchOutputFile string
)

func init() {
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job description text file")
	batchCmd.Flags().StringVarP(&batchJobTitle, "title", "t", "", "Job title")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file with ranked results")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, engine, logger, err := buildEngine()
	if err != nil {
		return err
	}

	if len(args) > cfg.MaxBatchFiles {
		return fmt.Errorf("too many resume files: got %d, maximum is %d", len(args), cfg.MaxBatchFiles)
	}

	items := make([]analyzer.BatchItem, 0, len(args))
	for _, path := range args {
		if err := cfg.ValidateResumeFile(path); err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume file %s: %w", path, err)
		}
		items = append(items, analyzer.BatchItem{
			Name: filepath.Base(path),
			Text: string(content),
		})
	}

	var jobDescription string
	if batchJobFile != "" {
		jobBytes, err := os.ReadFile(batchJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(jobBytes)
	}

	results, err := engine.AnalyzeBatch(cmd.Context(), items, jobDescription, batchJobTitle)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	store := history.NewStore(cfg.HistorySize)
	for _, result := range results {
		store.Add(result.Name, result.Report)
	}
	logger.Debug("batch complete", "analyzed", store.Len())

	ranked := analyzer.Rank(results)

	for i, result := range ranked {
		_, _ = fmt.Fprintf(os.Stdout, "%2d. %-30s %.2f (%s)\n",
			i+1, result.Name, result.Report.OverallScore, cfg.Band(result.Report.OverallScore))
	}

	if batchOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		if err := os.WriteFile(batchOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", batchOutputFile)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRanking(ranked)
	}

	return nil
}
