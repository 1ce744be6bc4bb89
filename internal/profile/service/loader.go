package service

import (
	"context"
	"sync"

	apperrors "drivedesk/pkg/errors"
	"drivedesk/pkg/model"
	"drivedesk/pkg/session"
)

// ViewState is the rendering contract: what a consumer needs to draw
// the page at any moment.
type ViewState struct {
	Loading bool                `json:"loading"`
	Error   string              `json:"error,omitempty"`
	Active  []model.BookingCard `json:"active"`
	History []model.BookingCard `json:"history"`
}

// Loader runs fetch cycles on behalf of a long-lived consumer and keeps
// the latest result. Nothing cancels an in-flight cycle, so overlapping
// refreshes can race; each refresh gets a monotonically increasing
// sequence number and a completion that is no longer the newest issued
// is discarded. Last issued wins, always.
type Loader struct {
	service ProfileService

	mu    sync.Mutex
	seq   uint64
	state ViewState
}

func NewLoader(service ProfileService) *Loader {
	return &Loader{service: service}
}

// Refresh runs one full cycle and folds the result into the state,
// unless a newer refresh was issued while this one was in flight.
func (l *Loader) Refresh(ctx context.Context, provider session.Provider) {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.state.Loading = true
	l.mu.Unlock()

	view, err := l.service.View(ctx, provider)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		// A newer refresh superseded this one; its result is stale.
		return
	}

	l.state.Loading = false
	if err != nil {
		l.state.Error = apperrors.AsAppError(err).Message
		l.state.Active = nil
		l.state.History = nil
		return
	}

	l.state.Error = ""
	l.state.Active = view.Active
	l.state.History = view.History
}

func (l *Loader) Snapshot() ViewState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
