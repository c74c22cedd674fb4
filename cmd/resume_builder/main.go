// Package main provides the resume_builder CLI, the form-glue layer over the
// suggestion engine and the resume store.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/suggest"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Local resume builder",
	Long:  "resume_builder manages locally persisted resumes with ranked, typo-tolerant field suggestions, JSON import/export and printable output.",
}

var (
	rootConfigPath string
	rootStorageDir string
	rootMaxBytes   int
	rootLogLevel   string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootStorageDir, "storage-dir", "", "Directory backing the persistence namespace")
	rootCmd.PersistentFlags().IntVar(&rootMaxBytes, "max-storage-bytes", 0, "Capacity budget for the namespace (default 5 MiB)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed information")

	rootCmd.PersistentPreRunE = setupLogging
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	levelName := rootLogLevel
	if levelName == "" {
		levelName = os.Getenv("RESUME_BUILDER_LOG_LEVEL")
	}
	if levelName == "" {
		levelName = "warn"
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// loadSettings merges config-file values under the CLI flags.
func loadSettings() (config.Config, error) {
	flags := config.Config{
		StorageDir:      rootStorageDir,
		MaxStorageBytes: rootMaxBytes,
		Verbose:         rootVerbose,
	}

	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		if err := fileCfg.Validate(); err != nil {
			return config.Config{}, err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}

	if flags.StorageDir == "" {
		flags.StorageDir = config.DefaultStorageDir()
	}
	if flags.MaxStorageBytes == 0 {
		flags.MaxStorageBytes = storage.DefaultMaxBytes
	}
	return flags, nil
}

// openStore opens the persistence namespace and the stores over it.
func openStore() (*storage.FileStore, *store.Store, *suggest.Engine, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, nil, nil, err
	}
	kv, err := storage.NewFileStore(cfg.StorageDir, cfg.MaxStorageBytes)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return kv, store.New(kv, cfg.MaxStorageBytes), suggest.NewEngine(kv), nil
}
