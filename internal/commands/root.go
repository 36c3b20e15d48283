package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pocketledger/pocket/internal/buildinfo"
	"github.com/pocketledger/pocket/internal/config"
	"github.com/pocketledger/pocket/internal/logging"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	timezone   string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pocket",
		Short:   "Personal finance wallet tools",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := logging.New(cmd.ErrOrStderr(), opts.verbose)
			cmd.SetContext(logging.Context(cmd.Context(), logger))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "pocket.yaml", "config file")
	flags.StringVar(&opts.timezone, "tz", "", "IANA timezone overriding the config (e.g. America/Sao_Paulo)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")

	// Registered now rather than during execute so --version followed by
	// another flag does not swallow that flag as its value.
	rootCmd.InitDefaultVersionFlag()

	rootCmd.AddCommand(newApplyDayCommand(opts))
	rootCmd.AddCommand(newTxnCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}

// resolve loads the config and picks the timezone, --tz winning over the file.
func (o *globalOptions) resolve(cmd *cobra.Command) (*config.Config, *time.Location, error) {
	log := logging.From(cmd.Context())

	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.timezone != "" {
		cfg.Timezone = o.timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving timezone: %w", err)
	}
	log.Debug("resolved settings",
		zap.String("config", o.configPath),
		zap.String("timezone", loc.String()),
		zap.String("layout", cfg.Output.Layout))
	return cfg, loc, nil
}

// showUTC reports whether output should repeat an instant in UTC. It is
// skipped when the timezone already is UTC.
func showUTC(cfg *config.Config, loc *time.Location) bool {
	return cfg.Output.UTC && loc != time.UTC
}
