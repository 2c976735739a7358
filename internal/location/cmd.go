package location

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

// requestTimeout bounds a single lookup.
const requestTimeout = 10 * time.Second

// Purpose tags a request so the screen that issued it can claim the result.
type Purpose string

const (
	PurposePermission Purpose = "permission"
	PurposeShare      Purpose = "share"
	PurposeSOS        Purpose = "sos"
)

// ResultMsg carries the outcome of RequestCmd.
type ResultMsg struct {
	Purpose Purpose
	Coords  Coordinates
	Err     error
}

// RequestCmd runs a lookup off the UI loop and delivers a ResultMsg.
func RequestCmd(ctx context.Context, p Provider, purpose Purpose) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		coords, err := p.Request(ctx)
		return ResultMsg{Purpose: purpose, Coords: coords, Err: err}
	}
}
