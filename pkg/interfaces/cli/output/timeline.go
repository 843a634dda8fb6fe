package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
)

const timelineLabelWidth = 28

// WriteTimeline prints the project-by-day overview as a text chart.
// Each bar cell shows the segment's scope letter; overlapping segments show '#'.
func WriteTimeline(w io.Writer, view dto.TimelineView) error {
	if len(view.Days) == 0 {
		return nil
	}
	first, last := view.Days[0], view.Days[len(view.Days)-1]
	fmt.Fprintf(w, "🗓  Timeline %s - %s\n\n", first, last)

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", timelineLabelWidth))
	for _, day := range view.Days {
		header.WriteString(fmt.Sprintf(" %2d", day.Day))
	}
	fmt.Fprintln(w, header.String())

	for _, row := range view.Rows {
		cells := make([]string, len(view.Days))
		for i := range cells {
			cells[i] = "  ."
		}
		for _, bar := range row.Bars {
			for i := bar.StartIndex; i <= bar.EndIndex; i++ {
				if cells[i] != "  ." {
					cells[i] = "  #"
					continue
				}
				cells[i] = "  " + scopeLetter(bar.Segment.Scope)
			}
		}

		fmt.Fprintf(w, "%-*s%s\n", timelineLabelWidth, truncate(row.Project.ProjectCode+" "+row.Project.SiteName, timelineLabelWidth-1), strings.Join(cells, ""))
	}

	fmt.Fprintf(w, "\nP = %s, F = %s, M = %s\n",
		entities.ScopePaint.Label(), entities.ScopeFirestopping.Label(), entities.ScopeMixed.Label())
	return nil
}

func scopeLetter(scope entities.WorkScope) string {
	switch scope {
	case entities.ScopePaint:
		return "P"
	case entities.ScopeFirestopping:
		return "F"
	default:
		return "M"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
