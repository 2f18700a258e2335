// Package cli implements the appstore command tree on top of the catalog
// services. Each invocation loads the catalog file, runs one operation and
// saves the file again when the operation changed anything.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/go-appstore/internal/adapters/filestore"
	"github.com/jsamuelsen/go-appstore/internal/adapters/random"
	"github.com/jsamuelsen/go-appstore/internal/adapters/ratings"
	"github.com/jsamuelsen/go-appstore/internal/app"
	"github.com/jsamuelsen/go-appstore/internal/platform/config"
	"github.com/jsamuelsen/go-appstore/internal/platform/logging"
	"github.com/jsamuelsen/go-appstore/internal/ports"
)

// options holds the global flags.
type options struct {
	configDir string
	profile   string
	file      string
	seed      int64
}

// session is the state shared by the commands of one invocation. It is
// populated by the root command's PersistentPreRunE.
type session struct {
	opts    options
	logger  *slog.Logger
	store   *filestore.Store
	catalog *app.Catalog
	health  *ports.DefaultHealthRegistry
}

// NewRootCommand builds a fresh command tree. version is reported by
// --version.
func NewRootCommand(version string) *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "appstore",
		Short: "Manage an app store catalog",
		Long: `appstore keeps a catalog of education, game and productivity apps and
the developers that publish them in a YAML file.

Examples:
  # Register a developer and add an app
  appstore developer add Lego www.lego.com
  appstore add education --name WeDo --developer Lego --size 1 --version 1.0 --cost 0 --level 3

  # Reports
  appstore list summary
  appstore search rating 4

  # Simulate one rating per app, then show the recommended ones
  appstore simulate
  appstore list recommended`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.open,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.opts.configDir, "config-dir", config.DefaultConfigDir, "Directory holding base.yaml and profile files")
	flags.StringVarP(&s.opts.profile, "profile", "p", "", "Configuration profile to layer over base.yaml")
	flags.StringVarP(&s.opts.file, "file", "f", "", "Catalog file (overrides catalog.file)")
	flags.Int64Var(&s.opts.seed, "seed", 0, "Random seed for simulate and random (overrides catalog.seed)")

	root.AddCommand(
		newListCmd(s),
		newSearchCmd(s),
		newAddCmd(s),
		newDeleteCmd(s),
		newShowCmd(s),
		newSortCmd(s),
		newSimulateCmd(s),
		newRandomCmd(s),
		newCountCmd(s),
		newDeveloperCmd(s),
		newCheckCmd(s),
	)

	return root
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// open loads configuration and wires the catalog with its adapters.
func (s *session) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(s.opts.configDir, s.opts.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Catalog.File = s.opts.file
	}

	if flags.Changed("seed") {
		cfg.Catalog.Seed = s.opts.seed
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
	logging.SetDefault(logger)

	ctx := logging.WithContext(cmd.Context(), logger)
	ctx = logging.WithCorrelationID(ctx, uuid.NewString())
	ctx = logging.WithCommand(ctx, cmd.CommandPath())
	cmd.SetContext(ctx)

	s.logger = logging.FromContext(ctx)

	source := random.New(uint64(cfg.Catalog.Seed)) //nolint:gosec // validated non-negative

	simulator, err := ratings.NewSimulator(ratings.Config{Random: source})
	if err != nil {
		return fmt.Errorf("creating rating simulator: %w", err)
	}

	s.store = filestore.New(filestore.Config{Path: cfg.Catalog.File, Logger: s.logger})
	s.catalog = app.NewCatalog(app.CatalogConfig{
		Store:   s.store,
		Random:  source,
		Ratings: simulator,
		Logger:  s.logger,
	})

	s.health = ports.NewHealthRegistry()
	if err := s.health.Register(s.store); err != nil {
		return fmt.Errorf("registering catalog file health check: %w", err)
	}

	s.logger.DebugContext(ctx, "session opened",
		slog.String("catalog", s.store.Location()),
		slog.Uint64("seed", source.Seed()),
	)

	return nil
}

// load reads the catalog file. A file that does not exist yet yields an
// empty catalog.
func (s *session) load(ctx context.Context) error {
	err := s.catalog.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.InfoContext(ctx, "catalog file not found, starting empty",
			slog.String("location", s.store.Location()),
		)

		return nil
	}

	return err
}

// view loads the catalog and runs fn without saving.
func (s *session) view(cmd *cobra.Command, fn func(ctx context.Context, c *app.Catalog) error) error {
	ctx := cmd.Context()
	if err := s.load(ctx); err != nil {
		return err
	}

	return fn(ctx, s.catalog)
}

// update loads the catalog, runs fn and saves the result when fn succeeds.
func (s *session) update(cmd *cobra.Command, fn func(ctx context.Context, c *app.Catalog) error) error {
	ctx := cmd.Context()
	if err := s.load(ctx); err != nil {
		return err
	}

	if err := fn(ctx, s.catalog); err != nil {
		return err
	}

	return s.catalog.Save(ctx)
}

func writeLine(cmd *cobra.Command, line string) {
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

// writeReport writes a multi-line report, which already ends with a
// newline, or a one-line message, which does not.
func writeReport(cmd *cobra.Command, report string) {
	if strings.HasSuffix(report, "\n") {
		fmt.Fprint(cmd.OutOrStdout(), report)
		return
	}

	writeLine(cmd, report)
}
