package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/project-copacetic/report-table/pkg/comment"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set at build time.
var version = "dev"

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	rootCmd := &cobra.Command{
		Use:           "report-table",
		Short:         "Summarize Playwright report directories for pull request comments",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(logLevel, logFormat)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", log.InfoLevel.String(), "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "text", "Log format (text or json)")

	rootCmd.AddCommand(comment.NewBuildCmd())
	return rootCmd
}

func setupLogging(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)

	switch format {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", format)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
