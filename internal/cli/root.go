// Package cli implements the quotegen command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
	"github.com/jsamuelsen/quotegen/internal/platform/logging"
)

// BuildInfo identifies the binary. Set by main from ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// rootOptions hold the persistent flags and the state PersistentPreRunE
// prepares for subcommands.
type rootOptions struct {
	configDir string
	profile   string
	logLevel  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd returns the quotegen command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "quotegen",
		Short:   "Random quotes, kept in sync with a remote collection",
		Version: build.Version,
		Long: `quotegen stores quotes locally, shows random ones, filters them by
category and reconciles them with a remote quote collection.

Run "quotegen serve" to expose the same operations over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configDir, "config-dir", config.DefaultConfigDir, "directory holding base.yaml and profile files")
	flags.StringVar(&opts.profile, "profile", profile, "configuration profile (local, dev, qa, prod, test)")
	flags.StringVar(&opts.logLevel, "log-level", "", "override log.level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(opts, build),
		newRandomCmd(opts),
		newAddCmd(opts),
		newListCmd(opts),
		newCategoriesCmd(opts),
		newSelectCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newSyncCmd(opts),
		newPushCmd(opts),
	)

	return cmd
}

// setup loads configuration, builds the logger and tags the command context
// with a correlation ID shared by every log line of this invocation.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFrom(o.configDir, o.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = middleware.WithCorrelation(logging.WithContext(ctx, logger), uuid.NewString())

	cmd.SetContext(ctx)

	o.cfg = cfg
	o.logger = logging.FromContext(ctx)

	return nil
}

// withRuntime wires the application for one command and closes it afterwards.
// Notifications go to stderr so stdout stays machine readable.
func (o *rootOptions) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *Runtime) error) error {
	ctx := cmd.Context()

	rt, err := Wire(ctx, o.cfg, WireOptions{
		Logger:  o.logger,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	defer func() {
		if cerr := rt.Close(); cerr != nil {
			o.logger.WarnContext(ctx, "closing storage failed", slog.Any("error", cerr))
		}
	}()

	return fn(ctx, rt)
}
