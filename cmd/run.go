package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tanmay/physiq/internal/app"
	"github.com/tanmay/physiq/internal/config"
	"github.com/tanmay/physiq/internal/llm"
	"github.com/tanmay/physiq/internal/logging"
	"github.com/tanmay/physiq/internal/objectstore"
	"github.com/tanmay/physiq/internal/questiongen"
	"github.com/tanmay/physiq/internal/source"
	"github.com/tanmay/physiq/internal/store"
)

// runApp builds the dependency graph and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.Load()

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	log, closeLog, err := logging.Setup(logPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	dbPath := cfg.DBPath
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		dbPath = p
	}
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("create DB dir: %w", err)
	}
	history, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open results history: %w", err)
	}
	defer history.Close()

	bankPath := cfg.BankPath
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		bankPath = p
	}

	src := buildSource(cmd, cfg, bankPath, log)

	log.Info().Str("bank", bankPath).Str("db", dbPath).Msg("starting")
	return app.Run(app.Deps{
		Source:  src,
		History: history,
		Log:     log,
	})
}

// buildSource assembles the question source: the local bank first, live
// generation from S3 as fallback when credentials and an LLM key exist.
func buildSource(cmd *cobra.Command, cfg *config.Config, bankPath string, log zerolog.Logger) source.Source {
	fileSrc := source.NewFileSource(bankPath, log)

	remote, err := buildRemoteSource(cmd, cfg, log)
	if err != nil {
		log.Info().Err(err).Msg("live generation unavailable, using bank only")
		fmt.Fprintln(os.Stderr, "Live question generation unavailable:", err)
		return fileSrc
	}

	return source.NewFallbackSource(fileSrc, remote, log)
}

// buildRemoteSource wires S3 and the LLM provider. Fails fast when either
// half is unconfigured so the caller can degrade to the bank file.
func buildRemoteSource(cmd *cobra.Command, cfg *config.Config, log zerolog.Logger) (source.Source, error) {
	if !cfg.HasAWSCredentials() {
		return nil, fmt.Errorf("AWS credentials not configured")
	}

	ctx := cmd.Context()
	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		return nil, err
	}

	objStore, err := objectstore.NewS3Store(ctx, objectstore.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	gen := questiongen.NewLLMGenerator(provider, rng, log)
	return source.NewRemoteSource(objStore, gen, cfg.S3Prefix, rng, log), nil
}
