package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/PizzaHomicide/lumix/internal/config"
	"github.com/PizzaHomicide/lumix/internal/log"
	"github.com/PizzaHomicide/lumix/internal/ui/tui"
	"github.com/PizzaHomicide/lumix/internal/version"
	"github.com/joho/godotenv"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version information and exit")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: lumix [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n%s", config.EnvVarHelp())
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo())
		return
	}

	// Values in .env files never override variables already set in the environment.  Missing files are fine.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// It is unrecoverable if we cannot produce an application config
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.New(log.Config{
		Level:      cfg.Logging.Level,
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	log.SetDefaultLogger(logger)

	log.Info("Starting up Lumix", "version", version.GetVersion(), "build_time", version.GetBuildTime(), "profile_source", cfg.Profile.Source)

	if err := tui.Run(cfg); err != nil {
		log.Error("Unhandled error while running TUI", "error", err)
		// Deferred close doesn't run after os.Exit
		logger.Close()
		os.Exit(1)
	}

	log.Info("Lumix shutting down.  Goodbye!")
}
