package handlers

import "time"

// SetClock replaces the handler's clock
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}
