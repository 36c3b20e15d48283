package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pocketledger/pocket/internal/calendar"
	"github.com/pocketledger/pocket/internal/logging"
)

func newApplyDayCommand(opts *globalOptions) *cobra.Command {
	var flags dayFlags

	cmd := &cobra.Command{
		Use:   "apply-day",
		Short: "Move an instant onto a picked calendar day",
		Long: `Move an instant onto a picked calendar day in the configured timezone.

With --at the UTC time-of-day of that instant is kept. Without it the
result is midnight of the day. Days past the end of a month roll over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			day, err := flags.parseDay()
			if err != nil {
				return err
			}
			at, err := flags.parseAt()
			if err != nil {
				return err
			}

			log, _ := logging.SubFrom(cmd.Context(), "apply-day")
			if verr := day.Validate(); verr != nil {
				log.Warn("day out of range, rolling over", zap.Stringer("day", day), zap.Error(verr))
			}

			got := calendar.ApplyDayIn(at, day, loc)
			log.Debug("applied day",
				zap.Stringer("day", day),
				zap.Bool("existing", at != nil),
				zap.Time("result", got))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, got.Format(cfg.Output.Layout))
			if showUTC(cfg, loc) {
				fmt.Fprintln(out, got.UTC().Format(cfg.Output.Layout))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
