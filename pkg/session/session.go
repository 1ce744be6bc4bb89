// Package session is the gate between the profile service and whatever
// identity system holds the caller's session. The identity client is an
// injected capability, never ambient state, so the fetch cycle is
// deterministic under test.
package session

import (
	"context"

	apperrors "drivedesk/pkg/errors"
	"drivedesk/pkg/model"
)

// Session is the identity provider's view of the caller. Only the access
// token matters here; everything else about the session is the provider's
// business.
type Session struct {
	AccessToken string `json:"access_token"`
}

// Provider yields the current session, or nil when there is none.
// Implementations must not retry or refresh; the gate is one check per
// fetch cycle.
type Provider interface {
	GetSession(ctx context.Context) (*Session, error)
}

// Acquire returns the caller's bearer credential, or an unauthenticated
// error when the provider has no session. An unauthenticated outcome is
// terminal for the cycle: callers must not attempt the bookings fetch.
func Acquire(ctx context.Context, p Provider) (model.Token, error) {
	sess, err := p.GetSession(ctx)
	if err != nil {
		return "", apperrors.Upstream("Failed to read session", err)
	}
	if sess == nil || sess.AccessToken == "" {
		return "", apperrors.Unauthenticated("Not authenticated")
	}
	return model.Token(sess.AccessToken), nil
}
