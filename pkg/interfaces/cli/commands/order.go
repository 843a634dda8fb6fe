package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/application/services/session"
	"github.com/vsinha/siteorders/pkg/domain/entities"
	"github.com/vsinha/siteorders/pkg/interfaces/cli/output"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

type orderOptions struct {
	segmentID string
	items     []string
	copy      bool
	place     bool
}

func newOrderCommand(a *app) *cobra.Command {
	opts := orderOptions{}

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Compose the material order request for a segment",
		Long: `Loads the segment's unordered materials, applies --item changes and prints the order request.
An item quantity of 0 removes the material. --place marks the materials as ordered.`,
		Example: `  siteorders order --segment s1 --item m1=4 --item m2=0 --copy`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("copy") {
				opts.copy = a.cfg.Order.CopyToClipboard
			}
			return a.runOrder(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.segmentID, "segment", "s", "", "segment to order for")
	cmd.Flags().StringArrayVarP(&opts.items, "item", "i", nil, "material quantity as <materialId>=<quantity>, repeatable")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the order request to the clipboard")
	cmd.Flags().BoolVar(&opts.place, "place", false, "mark the materials as ordered")
	_ = cmd.MarkFlagRequired("segment")

	return cmd
}

func (a *app) runOrder(w io.Writer, opts orderOptions) error {
	workspace, err := a.workspace()
	if err != nil {
		return err
	}

	var draft *dto.OrderDraft
	var placed *dto.PlacedOrder
	err = workspace.Do(func(ws *session.Workspace) error {
		var err error
		if err = ws.Orders.SelectSegment(entities.SegmentID(opts.segmentID)); err != nil {
			return err
		}
		for _, item := range opts.items {
			materialID, quantity, err := parseItem(item)
			if err != nil {
				return err
			}
			if err := ws.Orders.SetQuantity(materialID, quantity); err != nil {
				return errors.Wrapf(err, "item %q", item)
			}
		}

		if draft, err = ws.Orders.Draft(); err != nil {
			return err
		}
		if opts.place {
			placed, err = ws.Orders.PlaceOrder()
		}
		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to build order")
	}

	if opts.copy {
		copyDocument(draft.Document)
	}

	if placed != nil {
		return output.Render(w, a.format, placed, func(w io.Writer) error {
			if err := output.WriteOrderDraft(w, draft); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return output.WritePlacedOrder(w, placed)
		})
	}
	return output.Render(w, a.format, draft, func(w io.Writer) error {
		return output.WriteOrderDraft(w, draft)
	})
}

// copyDocument puts the order request on the clipboard. A failure is only
// reported; the request is still printed for manual copying.
func copyDocument(document string) {
	if err := writeClipboard(document); err != nil {
		log.Warn().Err(err).Msg("Failed to copy to clipboard, please select and copy the text manually")
		return
	}
	log.Info().Msg("Order request copied to clipboard")
}

// parseItem parses "<materialId>=<quantity>"
func parseItem(s string) (entities.MaterialID, entities.Quantity, error) {
	id, qty, found := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if !found || id == "" {
		return "", 0, fmt.Errorf("invalid item %q, expected <materialId>=<quantity>", s)
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(qty), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid quantity in item %q", s)
	}
	return entities.MaterialID(id), entities.Quantity(quantity), nil
}
