// internal/form/notify.go
//
// Contact form – toast lifecycle.
//
// Context
//   At most one toast is visible.  Showing a new one replaces the old one
//   and cancels its dismissal timer.  Each toast carries a sequence number
//   and the timer callback only clears the toast it was created for, so a
//   timer that already fired but has not yet taken the lock cannot hide a
//   newer toast.
//
//------------------------------------------------------------------------------

package form

// Notification returns the current toast.
func (c *Controller) Notification() Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.note
}

// Dismiss hides the toast immediately and cancels its timer.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearNoteLocked()
}

// showLocked replaces the toast and arms a fresh dismissal timer.  Caller
// holds mu.
func (c *Controller) showLocked(msg string, kind Kind) {
	c.clearNoteLocked()

	seq := c.noteSeq
	c.note = Notification{Visible: true, Message: msg, Kind: kind}
	c.noteTimer = c.clock.AfterFunc(c.dismissAfter, func() { c.expire(seq) })
}

// clearNoteLocked stops any pending timer and invalidates its sequence.
func (c *Controller) clearNoteLocked() {
	if c.noteTimer != nil {
		c.noteTimer.Stop()
		c.noteTimer = nil
	}
	c.noteSeq++
	c.note = Notification{}
}

// expire runs on the timer goroutine.
func (c *Controller) expire(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.noteSeq {
		return
	}
	c.note = Notification{}
	c.noteTimer = nil
}
