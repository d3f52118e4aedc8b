// Package main provides the entry point for the resume screener CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Resume screening and job-fit scoring engine",
	Long:  "Resume Screener scores resumes against job descriptions: skill extraction across a configurable taxonomy, role-aware fit scoring, contextual bonuses, and actionable recommendations.",
}

var (
	configFile  string
	verboseMode bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Print formatted report details")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
