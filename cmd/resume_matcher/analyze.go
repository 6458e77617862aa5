package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/augment"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  "Analyze a resume against a job description from a text file or URL, and print the match scores, matched and missing keywords, and format checks as JSON.",
	RunE:  runAnalyze,
}

var (
	resumeFile  string
	jobFile     string
	jobURL      string
	configPath  string
	enhance     bool
	useBrowser  bool
	verbose     bool
	outFile     string
	prettyPrint bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&jobFile, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch job description from")
	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&enhance, "enhance", false, "Augment the analysis with AI-generated feedback (requires GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVar(&useBrowser, "browser", false, "Use headless browser fallback for SPA job pages")
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the result JSON to a file instead of stdout")
	analyzeCmd.Flags().BoolVar(&prettyPrint, "pretty", true, "Pretty-print the result JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := resolveAnalyzeConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	resumeText, _, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jdText string
	if cfg.Job != "" {
		jdText, _, err = ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	} else {
		jdText, _, err = ingestion.IngestFromURL(cmd.Context(), cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	analyzer := analysis.NewDefault()
	result := analyzer.AnalyzeLocally(resumeText, jdText)

	if enhance {
		enhanced, err := enhanceResult(cmd.Context(), cfg, resumeText, jdText, result)
		if err != nil {
			// Best effort: report and fall back to the local analysis
			fmt.Fprintf(os.Stderr, "Warning: AI enhancement failed: %v\n", err)
			result.Meta.AugmentationFailed = true
		} else {
			result = enhanced
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalysisSummary(result)
	}

	return writeResult(result)
}

// resolveAnalyzeConfig merges CLI flags over the optional config file.
func resolveAnalyzeConfig() config.Config {
	flags := config.Config{
		Resume:     resumeFile,
		Job:        jobFile,
		JobURL:     jobURL,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		UseBrowser: useBrowser,
		Verbose:    verbose,
	}

	if configPath == "" {
		return flags
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
		return flags
	}

	return flags.MergeWithDefaults(*fileCfg)
}

func enhanceResult(ctx context.Context, cfg config.Config, resumeText, jdText string, local *types.AnalysisResult) (*types.AnalysisResult, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required for --enhance")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	enhancer := augment.New(client)
	aug, err := enhancer.Enhance(ctx, resumeText, jdText, local)
	if err != nil {
		return nil, err
	}

	return analysis.Assemble(local, aug), nil
}

func writeResult(result *types.AnalysisResult) error {
	var (
		data []byte
		err  error
	)
	if prettyPrint {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Result written to %s\n", outFile)
		return nil
	}

	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
