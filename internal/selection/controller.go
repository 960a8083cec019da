// Package selection tracks which result row is active under keyboard
// navigation. The active row is remembered by label so it survives the result
// list being rebuilt.
package selection

// None is the active index when no row is selected.
const None = -1

// Controller is the selection state machine over a list of row labels.
//
// Moving down saturates at the last row; moving up saturates at None, not at
// row 0, so that repeated "up" hands focus back to the input.
type Controller struct {
	labels  []string
	active  int
	last    string
	hasLast bool
}

// New returns a Controller with no rows and nothing selected.
func New() *Controller {
	return &Controller{active: None}
}

// Index returns the active row, or None.
func (c *Controller) Index() int {
	return c.active
}

// Len returns the number of rows.
func (c *Controller) Len() int {
	return len(c.labels)
}

// Labels returns the current rows.
func (c *Controller) Labels() []string {
	return c.labels
}

// MoveDown selects the next row, staying on the last one.
func (c *Controller) MoveDown() {
	if c.active < len(c.labels)-1 {
		c.active++
	}
	c.remember()
}

// MoveUp selects the previous row; above row 0 nothing is selected.
func (c *Controller) MoveUp() {
	if c.active > None {
		c.active--
	}
	c.remember()
}

// Rebind replaces the rows after the result list was rebuilt.
//
// The index is first clamped down to the new last row (a None index stays
// None). Then, if a row was selected before the rebuild, the first row with
// the same label becomes active; otherwise the clamped index stands.
func (c *Controller) Rebind(labels []string) {
	prev, hadPrev := c.last, c.hasLast

	c.labels = labels
	if c.active >= len(labels) {
		c.active = len(labels) - 1
	}

	if hadPrev {
		for i, label := range labels {
			if label == prev {
				c.active = i
				break
			}
		}
	}
	c.remember()
}

// Active returns the label of the active row. ok is false when nothing is
// selected.
func (c *Controller) Active() (label string, ok bool) {
	if c.active < 0 || c.active >= len(c.labels) {
		return "", false
	}
	return c.labels[c.active], true
}

// LastSelected returns the label used to re-anchor across rebuilds.
func (c *Controller) LastSelected() (label string, ok bool) {
	return c.last, c.hasLast
}

// Reset clears the selection and the remembered label. Rows are kept.
func (c *Controller) Reset() {
	c.active = None
	c.last, c.hasLast = "", false
}

// remember makes the anchor label follow the active row.
func (c *Controller) remember() {
	if label, ok := c.Active(); ok {
		c.last, c.hasLast = label, true
		return
	}
	if c.active == None {
		c.last, c.hasLast = "", false
	}
}
