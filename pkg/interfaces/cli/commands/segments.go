package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/interfaces/cli/output"
)

func newSegmentsCommand(a *app) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "List segments by start date with their order status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := a.workspace()
			if err != nil {
				return err
			}

			var segments []entities.Segment
			for _, segment := range workspace.Schedule.SegmentsByStartDate() {
				if projectID == "" || segment.ProjectID == entities.ProjectID(projectID) {
					segments = append(segments, segment)
				}
			}
			listings := workspace.Status.SegmentListings(segments)

			return output.Render(cmd.OutOrStdout(), a.format, listings, func(w io.Writer) error {
				return output.WriteSegments(w, listings)
			})
		},
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "only show segments of this project")
	return cmd
}
