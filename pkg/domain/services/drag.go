package services

import "cloud.google.com/go/civil"

// DragSelection tracks a calendar drag gesture from mouse-down to mouse-up.
// Highlighting and the final range both go through DragRange so they always agree.
type DragSelection struct {
	anchor   civil.Date
	current  civil.Date
	dragging bool
}

// Begin starts a drag on day
func (d *DragSelection) Begin(day civil.Date) {
	d.anchor = day
	d.current = day
	d.dragging = true
}

// Extend moves the free end of the drag; it is ignored when no drag is in progress
func (d *DragSelection) Extend(day civil.Date) {
	if !d.dragging {
		return
	}
	d.current = day
}

// Dragging reports whether a drag is in progress
func (d *DragSelection) Dragging() bool {
	return d.dragging
}

// Range returns the normalised range of the current drag
func (d *DragSelection) Range() (DateRange, bool) {
	if !d.dragging {
		return DateRange{}, false
	}
	return DragRange(d.anchor, d.current), true
}

// Highlighted reports whether day lies within the current drag range
func (d *DragSelection) Highlighted(day civil.Date) bool {
	r, ok := d.Range()
	return ok && r.Contains(day)
}

// Finish ends the drag and returns the selected range
func (d *DragSelection) Finish() (DateRange, bool) {
	r, ok := d.Range()
	*d = DragSelection{}
	return r, ok
}

// Cancel abandons the drag without producing a range
func (d *DragSelection) Cancel() {
	*d = DragSelection{}
}
