package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/audio-summarizer/internal/app"
	"github.com/nguyentantai21042004/audio-summarizer/internal/cli"
	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/output"
	"github.com/nguyentantai21042004/audio-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/audio-summarizer/pkg/executor"
)

var envFiles = []string{".env", "audio-summarizer.env"}

func main() {
	loadEnvFiles()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := &cli.Dependencies{
		LookPath: executor.New().LookPath,
	}
	deps.Load = func(configPath string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
		log.Debug(ctx, "System: %s/%s, speech: %s (%s), summary: %s (%s)",
			runtime.GOOS, runtime.GOARCH,
			cfg.Speech.Backend, cfg.Speech.Model, cfg.Summary.Backend, cfg.Summary.Model)

		deps.Config = cfg
		deps.Logger = log
		return nil
	}
	deps.NewPipeline = func(reporter pipeline.Reporter, progress io.Writer) (pipeline.Pipeline, error) {
		application, err := app.New(deps.Config, deps.Logger)
		if err != nil {
			return nil, fmt.Errorf("initializing app: %w", err)
		}
		return application.Pipeline(reporter, progress), nil
	}

	if err := cli.NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		output.NewFormatter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

// loadEnvFiles exports variables from env files in the working directory before config is read.
func loadEnvFiles() {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", envFile, err)
		}
	}
}
