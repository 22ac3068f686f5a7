package pagination

import (
	"fmt"

	"github.com/you-humble/partexplorer/internal/model"
)

// Controller tracks the current page against the server-reported total. It is
// not safe for concurrent use; the owning view serializes access.
type Controller struct {
	current int
	total   int64
	known   bool
}

func New() *Controller {
	return &Controller{current: 1}
}

func (c *Controller) Current() int { return c.current }

func (c *Controller) Total() int64 { return c.total }

// Reset moves back to page 1 and forgets the total.
func (c *Controller) Reset() {
	c.current = 1
	c.total = 0
	c.known = false
}

// SetTotal records the total reported by the last completed fetch.
func (c *Controller) SetTotal(total int64) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.known = true
}

// TotalPages is ceil(total/PageSize), at least 1 once a total is known and 0
// before that.
func (c *Controller) TotalPages() int {
	if !c.known {
		return 0
	}
	pages := int((c.total + model.PageSize - 1) / model.PageSize)
	return max(pages, 1)
}

// Goto validates n and makes it current. Until a total is known only page 1
// is reachable.
func (c *Controller) Goto(n int) error {
	const op = "pagination.Controller.Goto"

	if n < 1 {
		return fmt.Errorf("%s: %w: page %d", op, model.ErrPageOutOfRange, n)
	}
	if !c.known && n > 1 {
		return fmt.Errorf("%s: %w: page %d before the total is known", op, model.ErrPageOutOfRange, n)
	}
	if c.known && n > c.TotalPages() {
		return fmt.Errorf("%s: %w: page %d of %d", op, model.ErrPageOutOfRange, n, c.TotalPages())
	}

	c.current = n
	return nil
}
