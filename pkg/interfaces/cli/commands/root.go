package commands

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsinha/siteorders/pkg/application/services/session"
	"github.com/vsinha/siteorders/pkg/infrastructure/config"
	"github.com/vsinha/siteorders/pkg/infrastructure/fixtures"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/siteorders/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/siteorders/pkg/interfaces/cli/output"
)

// app carries the state shared by every command
type app struct {
	cfgFile string
	dataDir string
	verbose bool
	format  string

	cfg config.Config
}

// NewRootCommand builds the siteorders command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "siteorders",
		Short:         "Material ordering and segment scheduling for fire protection sites",
		Long:          `Plan work segments per site, compose material orders per segment and print supplier order requests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "CSV scenario directory (default is the built-in demo data)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", output.FormatText, "output format: text, json")

	rootCmd.AddCommand(
		newServeCommand(a),
		newSegmentsCommand(a),
		newOrderCommand(a),
		newCalendarCommand(a),
		newTimelineCommand(a),
		newValidateCommand(a),
	)

	return rootCmd
}

// Execute runs the root command with os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) initConfig() error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if a.dataDir != "" {
		cfg.Data.Dir = a.dataDir
	}
	a.cfg = cfg

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || cfg.Logging.Level == "" {
		level = zerolog.InfoLevel
	}
	if a.verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return nil
}

// loadStore reads the configured scenario directory, or the demo data when none is set
func (a *app) loadStore() (*memory.Store, error) {
	if a.cfg.Data.Dir == "" {
		log.Debug().Msg("Using built-in demo data")
		return fixtures.BuildDemoStore(), nil
	}

	data, err := csv.NewLoader().LoadDir(a.cfg.Data.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load scenario from %s", a.cfg.Data.Dir)
	}
	store, err := memory.NewStoreFromDataSet(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scenario in %s", a.cfg.Data.Dir)
	}

	log.Debug().
		Str("dir", a.cfg.Data.Dir).
		Int("projects", len(data.Projects)).
		Int("segments", len(data.Segments)).
		Int("materials", len(data.Materials)).
		Msg("Scenario loaded")
	return store, nil
}

// workspace loads the scenario into a single command-line workspace
func (a *app) workspace() (*session.Workspace, error) {
	store, err := a.loadStore()
	if err != nil {
		return nil, err
	}
	return session.NewWorkspace("cli", store, log.Logger), nil
}
