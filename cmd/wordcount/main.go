package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ib-77/ropfx/internal/wordcount"
	"github.com/ib-77/ropfx/pkg/rop/stream"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	buffer  int

	logger *zap.Logger
)

var errSomeFailed = errors.New("some files could not be counted")

var rootCmd = &cobra.Command{
	Use:   "wordcount <path>...",
	Short: "Count the words of files",
	Long: `Counts whitespace-separated words of every file given.

Each file is read into lines and the pure word count is mapped over the
result, so a file that cannot be read is reported and the rest are still
counted.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runCount,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&buffer, "buffer", 0, "Capacity of the stream between reading and printing")
}

func runCount(cmd *cobra.Command, args []string) error {
	ctx := stream.WithBuffer(cmd.Context(), buffer)

	failed := 0
	for _, c := range wordcount.CountAll(ctx, args) {
		if c.Result.IsSuccess() {
			logger.Debug("counted",
				zap.String("path", c.Path),
				zap.Int("words", c.Result.Result()),
				zap.String("id", c.Result.Id().String()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", c.Path, c.Result.Result())
			continue
		}

		failed++
		logger.Warn("count failed", zap.String("path", c.Path), zap.Error(c.Result.Err()))
		fmt.Fprintf(cmd.OutOrStdout(), "%s\terror: %v\n", c.Path, c.Result.Err())
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSomeFailed, failed, len(args))
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
