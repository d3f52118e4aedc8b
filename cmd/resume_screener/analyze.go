package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume, optionally against a job description",
	Long:  "Score a resume file and emit a structured JSON score report. When a job description is supplied the job-matching scoring path is used; otherwise the resume is scored on general strength.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJobTitle   string
	analyzeOutputFile string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobTitle, "title", "t", "", "Job title")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, engine, _, err := buildEngine()
	if err != nil {
		return err
	}

	if err := cfg.ValidateResumeFile(analyzeResumeFile); err != nil {
		return err
	}
	resumeBytes, err := os.ReadFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var jobDescription string
	if analyzeJobFile != "" {
		jobBytes, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(jobBytes)
	}

	report := engine.AnalyzeOrFallback(string(resumeBytes), jobDescription, analyzeJobTitle)

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", analyzeOutputFile)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintReport(&report, cfg.Band(report.OverallScore))
	}

	return nil
}
