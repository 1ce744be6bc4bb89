package model

import "time"

// Token is the opaque bearer credential proving the caller's identity
// to the bookings service.
type Token string

type BadgeTone string

const (
	ToneNeutral BadgeTone = "neutral"
	ToneCaution BadgeTone = "caution"
	ToneInfo    BadgeTone = "info"
	ToneSuccess BadgeTone = "success"
	ToneDanger  BadgeTone = "danger"
)

type Icon string

const (
	IconNone  Icon = ""
	IconAlert Icon = "alert"
	IconCheck Icon = "check"
	IconCross Icon = "cross"
)

// PresentationState is the visual treatment derived from a booking's
// status. Label carries the status string verbatim so unrecognized
// statuses still render.
type PresentationState struct {
	Tone  BadgeTone `json:"tone"`
	Icon  Icon      `json:"icon,omitempty"`
	Label string    `json:"label"`
}

// BookingCard is one renderable booking: the snapshot plus everything
// derived for display.
type BookingCard struct {
	Booking
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	State    PresentationState `json:"presentation"`
}

// ProfileView is the classified output of one fetch cycle. Every fetched
// booking appears in exactly one of the two groups, in fetch order.
type ProfileView struct {
	Active    []BookingCard `json:"active"`
	History   []BookingCard `json:"history"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// NavLink is a descriptor consumed by the header component, which renders
// links and holds no state of its own.
type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}
