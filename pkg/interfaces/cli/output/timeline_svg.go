package output

import (
	"fmt"
	"html"
	"strings"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// TimelineChart renders a timeline view as an SVG Gantt chart
type TimelineChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
	DayWidth     int
}

// NewTimelineChart sizes a chart for view
func NewTimelineChart(view dto.TimelineView) *TimelineChart {
	chart := &TimelineChart{
		MarginLeft:   220,
		MarginTop:    60,
		MarginRight:  40,
		MarginBottom: 80,
		RowHeight:    30,
		DayWidth:     48,
	}
	chart.Width = chart.MarginLeft + len(view.Days)*chart.DayWidth + chart.MarginRight
	chart.Height = chart.MarginTop + len(view.Rows)*chart.RowHeight + chart.MarginBottom
	return chart
}

// GenerateSVG creates an SVG representation of the timeline
func (tc *TimelineChart) GenerateSVG(view dto.TimelineView) string {
	if len(view.Days) == 0 || len(view.Rows) == 0 {
		return tc.generateEmptyChart()
	}

	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, tc.Width, tc.Height))
	svg.WriteString(`<defs>`)
	svg.WriteString(`<style>`)
	svg.WriteString(`.project-label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }`)
	svg.WriteString(`.day-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.segment-bar { stroke: #333; stroke-width: 1; }`)
	svg.WriteString(`.segment-text { font-family: Arial, sans-serif; font-size: 9px; fill: white; }`)
	svg.WriteString(`</style>`)
	svg.WriteString(`</defs>`)

	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, tc.Width, tc.Height))

	first, last := view.Days[0], view.Days[len(view.Days)-1]
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title">Site Schedule %s - %s</text>`, tc.MarginLeft, first, last))

	tc.drawDayAxis(&svg, view)
	tc.drawDayGrid(&svg, view)
	tc.drawProjectRows(&svg, view)
	tc.drawLegend(&svg)

	svg.WriteString(`</svg>`)
	return svg.String()
}

// drawDayAxis labels each day column below the rows
func (tc *TimelineChart) drawDayAxis(svg *strings.Builder, view dto.TimelineView) {
	axisY := tc.MarginTop + len(view.Rows)*tc.RowHeight

	for i, day := range view.Days {
		x := tc.MarginLeft + i*tc.DayWidth + tc.DayWidth/2
		label := fmt.Sprintf("%s %d", day.Month.String()[:3], day.Day)
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="day-label" text-anchor="middle">%s</text>`,
			x, axisY+15, label))
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
		tc.MarginLeft, axisY, tc.Width-tc.MarginRight, axisY))
}

// drawDayGrid draws one vertical line per day boundary
func (tc *TimelineChart) drawDayGrid(svg *strings.Builder, view dto.TimelineView) {
	gridBottom := tc.MarginTop + len(view.Rows)*tc.RowHeight

	for i := 0; i <= len(view.Days); i++ {
		x := tc.MarginLeft + i*tc.DayWidth
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			x, tc.MarginTop, x, gridBottom))
	}
}

// drawProjectRows draws a labelled row per project with its segment bars
func (tc *TimelineChart) drawProjectRows(svg *strings.Builder, view dto.TimelineView) {
	for i, row := range view.Rows {
		y := tc.MarginTop + i*tc.RowHeight

		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="project-label" text-anchor="end">%s</text>`,
			tc.MarginLeft-15, y+tc.RowHeight/2+4, html.EscapeString(row.Project.DisplayName())))

		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			tc.MarginLeft, y+tc.RowHeight, tc.Width-tc.MarginRight, y+tc.RowHeight))

		for _, bar := range row.Bars {
			tc.drawBar(svg, bar, y)
		}
	}
}

// drawBar draws one segment spanning its visible day columns
func (tc *TimelineChart) drawBar(svg *strings.Builder, bar dto.TimelineBar, rowY int) {
	barHeight := tc.RowHeight - 4
	barY := rowY + 2
	x := tc.MarginLeft + bar.StartIndex*tc.DayWidth + 1
	width := (bar.EndIndex-bar.StartIndex+1)*tc.DayWidth - 2

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="segment-bar">`,
		x, barY, width, barHeight, tc.getBarColor(bar.Segment.Scope)))

	tooltipText := fmt.Sprintf("%s %s - %s, %s",
		bar.Segment.Scope.Label(), bar.Segment.StartDate, bar.Segment.EndDate, bar.Segment.OrderStatus)
	svg.WriteString(fmt.Sprintf(`<title>%s</title></rect>`, tooltipText))

	if width > 40 {
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="segment-text" text-anchor="middle">%s</text>`,
			x+width/2, barY+barHeight/2+3, bar.Segment.Scope.Label()))
	}
}

// drawLegend explains the scope colors
func (tc *TimelineChart) drawLegend(svg *strings.Builder) {
	legendX := tc.MarginLeft
	legendY := tc.Height - tc.MarginBottom + 30

	items := []entities.WorkScope{entities.ScopePaint, entities.ScopeFirestopping, entities.ScopeMixed}
	for i, scope := range items {
		itemX := legendX + i*130
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="8" fill="%s"/>`,
			itemX, legendY, tc.getBarColor(scope)))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="day-label">%s</text>`,
			itemX+18, legendY+8, scope.Label()))
	}
}

// getBarColor returns the color for a work scope
func (tc *TimelineChart) getBarColor(scope entities.WorkScope) string {
	switch scope {
	case entities.ScopePaint:
		return "#2196F3"
	case entities.ScopeFirestopping:
		return "#F44336"
	case entities.ScopeMixed:
		return "#9C27B0"
	default:
		return "#9E9E9E"
	}
}

// generateEmptyChart creates an empty chart when there is nothing to show
func (tc *TimelineChart) generateEmptyChart() string {
	width, height := 800, 200
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
		<rect width="%d" height="%d" fill="white"/>
		<text x="%d" y="%d" class="title" text-anchor="middle">No Scheduled Segments</text>
		<style>
			.title { font-family: Arial, sans-serif; font-size: 16px; fill: #666; }
		</style>
	</svg>`, width, height, width, height, width/2, height/2)
}
