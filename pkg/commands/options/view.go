// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOShort = "1/2"
)

// ViewOptions selects the calendar granularity and anchor day.
type ViewOptions struct {
	OnString string
	ShowID   bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify the anchor day, example: --on="2024-03-10" or --on="3/10".`)
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each appointment.")
}

// GetOn resolves the anchor flag, defaulting to today. Short month/day input
// is assumed to mean the current year.
func (o *ViewOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return time.Time{}, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return t, nil
}
