package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort       int
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "browser", false, "Use headless browser fallback for SPA job pages")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// API key is optional: without it only local analysis is served
	apiKey := os.Getenv("GEMINI_API_KEY")

	cfg := server.Config{
		Port:           servePort,
		APIKey:         apiKey,
		Model:          os.Getenv("GEMINI_MODEL"),
		AugmentTimeout: augmentTimeoutFromEnv(),
		UseBrowser:     serveUseBrowser,
		Verbose:        serveVerbose,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// augmentTimeoutFromEnv reads AUGMENT_TIMEOUT_SECONDS, returning zero (use
// the default) when unset or invalid.
func augmentTimeoutFromEnv() time.Duration {
	value := os.Getenv("AUGMENT_TIMEOUT_SECONDS")
	if value == "" {
		return 0
	}
	var seconds int
	if _, err := fmt.Sscanf(value, "%d", &seconds); err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
