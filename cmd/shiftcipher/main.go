package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/NivBraz/shiftcipher/internal/app"
	"github.com/NivBraz/shiftcipher/internal/config"
)

func main() {
	// Create context that listens for the interrupt signal from the OS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// cli holds state shared by every command of one invocation.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "shiftcipher",
		Short: "Encrypt and break Caesar shift ciphers",
		Long: `shiftcipher encrypts text by rotating every letter a fixed number of
places, and decrypts ciphertext without the key by trying all 26 shifts and
keeping the one that yields the most dictionary words.

  shiftcipher encrypt --text "Attack at Dawn!" --shift 5
  shiftcipher decrypt --text "Fyyfhp fy Ifbs!"
  echo "khoor zruog" | shiftcipher decrypt --scores`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			c.cfg = cfg

			logger, err := buildLogger(cfg, c.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging and progress bars")

	root.AddCommand(c.newEncryptCmd(), c.newDecryptCmd(), c.newWordsCmd())
	return root
}

// buildLogger starts from zap's production config; logs go to stderr so
// stdout stays clean for results.
func buildLogger(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	if cfg.Logging.Development {
		zapConfig.Development = true
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapConfig.Build()
}

// newApp builds the application, loading the configured dictionary.
func (c *cli) newApp(cmd *cobra.Command) (*app.App, error) {
	progress := io.Discard
	if c.cfg.Output.ShowProgress || c.verbose {
		progress = cmd.ErrOrStderr()
	}

	application, err := app.New(cmd.Context(), c.cfg,
		app.WithLogger(c.logger),
		app.WithProgressWriter(progress))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}
