package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pocketledger/pocket/internal/calendar"
)

// dayFlags collects the picked day and the optional instant it replaces.
type dayFlags struct {
	day     string
	dayJSON string
	at      string
}

func (f *dayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.day, "day", "", "picked day as YYYY-MM-DD")
	cmd.Flags().StringVar(&f.dayJSON, "day-json", "", "picked day as a date-picker JSON payload")
	cmd.Flags().StringVar(&f.at, "at", "", "existing instant (RFC 3339) whose time-of-day is kept")
	cmd.MarkFlagsMutuallyExclusive("day", "day-json")
	cmd.MarkFlagsOneRequired("day", "day-json")
}

func (f *dayFlags) parseDay() (calendar.Day, error) {
	if f.dayJSON != "" {
		var d calendar.Day
		if err := json.Unmarshal([]byte(f.dayJSON), &d); err != nil {
			return calendar.Day{}, fmt.Errorf("parsing --day-json: %w", err)
		}
		return d, nil
	}
	d, err := calendar.Parse(f.day)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("parsing --day: %w", err)
	}
	return d, nil
}

// parseAt returns nil when --at was not given.
func (f *dayFlags) parseAt() (*time.Time, error) {
	if f.at == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, f.at)
	if err != nil {
		return nil, fmt.Errorf("parsing --at %q: %w", f.at, err)
	}
	return &t, nil
}
