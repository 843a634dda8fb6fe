package commands

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vsinha/siteorders/pkg/interfaces/cli/output"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the scenario's cross references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			workspace, err := a.workspace()
			if err != nil {
				return err
			}

			result := workspace.Validate()
			if err := output.Render(cmd.OutOrStdout(), a.format, result, func(w io.Writer) error {
				return output.WriteIntegrity(w, result)
			}); err != nil {
				return err
			}

			if !result.Valid() {
				return errors.Errorf("scenario has %d reference errors", len(result.Errors))
			}
			return nil
		},
	}
}
