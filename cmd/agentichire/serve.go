package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Aditya57958/AgenticHire/internal/config"
	"github.com/Aditya57958/AgenticHire/internal/llm"
	"github.com/Aditya57958/AgenticHire/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the process and health endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var client llm.Client
	if cfg.APIKey != "" {
		llmCfg := llm.DefaultConfig()
		llmCfg.APIKey = cfg.APIKey
		if cfg.PrimaryModel != "" {
			llmCfg.Primary = cfg.PrimaryModel
		}
		if cfg.FallbackModel != "" {
			llmCfg.Fallback = cfg.FallbackModel
		}
		llmCfg.Temperature = float32(cfg.Temperature)

		client, err = llm.NewClient(context.Background(), llmCfg)
		if err != nil {
			return fmt.Errorf("failed to create generation client: %w", err)
		}
	} else {
		log.Println("GEMINI_API_KEY not set; full-process requests will use heuristic generation")
	}

	return server.New(cfg, client).Start()
}

// resolveConfig layers environment, optional config file, CLI flags and
// defaults, in increasing priority of flags over file over env.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = serveUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = serveVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
