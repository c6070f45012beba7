package handlers

import (
	"context"
	"fmt"

	"github.com/epeers/stocklens/internal/theme"
)

// Theme handles `theme [show|toggle|light|dark]`
func (h *Handler) Theme(_ context.Context, args []string) error {
	fs := h.flags("theme")
	rest, err := h.parse(fs, args, 0, 1)
	if err != nil {
		return err
	}

	action := "show"
	if len(rest) == 1 {
		action = rest[0]
	}

	switch action {
	case "show":
	case "toggle":
		if _, err := h.themes.Toggle(); err != nil {
			return err
		}
	default:
		t, err := theme.Parse(action)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		if err := h.themes.Set(t); err != nil {
			return err
		}
	}

	h.out.Printf("Theme: %s\n", h.themes.Get())
	return nil
}
