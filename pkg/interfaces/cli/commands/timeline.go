package commands

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsinha/siteorders/pkg/application/services/scheduling"
	"github.com/vsinha/siteorders/pkg/interfaces/cli/output"
)

func newTimelineCommand(a *app) *cobra.Command {
	var weekStart, svgFile string
	var days int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the multi-project overview starting on a Monday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateFlag(weekStart)
			if err != nil {
				return err
			}
			workspace, err := a.workspace()
			if err != nil {
				return err
			}

			view := workspace.Schedule.Timeline(day, days)

			if svgFile != "" {
				svg := output.NewTimelineChart(view).GenerateSVG(view)
				if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
					return errors.Wrap(err, "failed to write SVG file")
				}
				log.Info().Str("file", svgFile).Msg("Timeline chart written")
			}

			return output.Render(cmd.OutOrStdout(), a.format, view, func(w io.Writer) error {
				return output.WriteTimeline(w, view)
			})
		},
	}

	cmd.Flags().StringVarP(&weekStart, "week-start", "w", "", "any day of the first week, yyyy-MM-dd (default this week)")
	cmd.Flags().IntVar(&days, "days", scheduling.DefaultTimelineDays, "number of days to show")
	cmd.Flags().StringVar(&svgFile, "svg", "", "also write the timeline as an SVG chart to this file")
	return cmd
}
