package commands

import (
	"io"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/interfaces/cli/output"
)

func newCalendarCommand(a *app) *cobra.Command {
	var date, projectID string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the month grid with the segments touching each day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(date)
			if err != nil {
				return err
			}
			workspace, err := a.workspace()
			if err != nil {
				return err
			}

			view := workspace.Schedule.MonthView(day, entities.ProjectID(projectID))
			return output.Render(cmd.OutOrStdout(), a.format, view, func(w io.Writer) error {
				return output.WriteMonth(w, view)
			})
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "any day of the month to show, yyyy-MM-dd (default today)")
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "only show segments of this project")
	return cmd
}

// parseDateFlag parses a yyyy-MM-dd flag value; empty means today
func parseDateFlag(value string) (civil.Date, error) {
	if value == "" {
		return civil.DateOf(time.Now()), nil
	}
	day, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}, errors.Errorf("invalid date %q, expected yyyy-MM-dd", value)
	}
	return day, nil
}
