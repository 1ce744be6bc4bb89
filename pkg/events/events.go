// Package events publishes audit events about profile activity. It is a
// thin producer: the profile service only ever emits, and losing an
// event must never fail a fetch cycle.
package events

import (
	"context"
	"time"
)

const TypeProfileViewed = "profile.viewed"

// ProfileViewed records one successful fetch-and-classify cycle.
type ProfileViewed struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	ActiveCount  int       `json:"active_count"`
	HistoryCount int       `json:"history_count"`
	FetchedAt    time.Time `json:"fetched_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event ProfileViewed) error
	Close() error
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, _ ProfileViewed) error { return nil }
func (NoopPublisher) Close() error                                     { return nil }
