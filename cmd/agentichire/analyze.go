package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aditya57958/AgenticHire/internal/ats"
	"github.com/Aditya57958/AgenticHire/internal/extract"
	"github.com/Aditya57958/AgenticHire/internal/observability"
	"github.com/Aditya57958/AgenticHire/internal/scrape"
)

var (
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeUseBrowser bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description offline",
	Long: `Run the keyword analysis and optimization report locally, without the
HTTP server or any generation model. The job description comes from a text
file or is scraped from a URL.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .docx or plain text)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to scrape the job description from (mutually exclusive with --job)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if (analyzeJob == "") == (analyzeJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	resumeData, err := os.ReadFile(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := extract.ResumeText(analyzeResume, resumeData)

	jdText, err := loadJobText()
	if err != nil {
		return err
	}

	analysis, err := ats.ComputeOverlap(resumeText, jdText)
	if err != nil {
		return err
	}
	opt, err := ats.ComputeOptimization(resumeText, jdText)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(analysis)
	printer.PrintOptimization(opt)
	return nil
}

func loadJobText() (string, error) {
	if analyzeJob != "" {
		data, err := os.ReadFile(analyzeJob)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}

	opts := scrape.DefaultOptions()
	opts.UseBrowser = analyzeUseBrowser

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	return scrape.JobDescription(ctx, analyzeJobURL, opts), nil
}
