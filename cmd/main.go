// Package main provides the CLI entrypoint for the phishing detection service.
// It wires subcommands (serve, check, refresh, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"
	"phishguard/internal/config"
	"phishguard/pkg/logger"
	"phishguard/pkg/storage/postgres"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// loadConfig reads the config file. A missing file falls back to defaults
// and the environment so one-shot commands work without one.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		log.Printf("config file %s not found, using defaults\n", path)

		return config.Defaults()
	}

	return nil, err
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "phishguard",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		checkCommand(cfg),
		refreshCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args. The standard flag
// package stops at the first subcommand, so the flag is searched for anywhere.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config", "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config=", "-config="} {
			if path, ok := strings.CutPrefix(arg, prefix); ok && path != "" {
				return []string{"-c", path}
			}
		}
	}

	return nil
}
