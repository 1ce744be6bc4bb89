// Package presenter derives display state from booking snapshots:
// badge tone and icon from the status, a title from the denormalized
// vehicle fields. Pure functions, no I/O.
package presenter

import (
	"fmt"
	"strconv"
	"strings"

	"drivedesk/pkg/model"
)

const fallbackSubtitle = "Test Drive Booking"

// StateFor maps a status string to its visual treatment. Total for every
// possible string: unrecognized statuses get a neutral badge carrying
// the status verbatim, with no icon.
func StateFor(status string) model.PresentationState {
	switch model.KindOfStatus(status) {
	case model.StatusKindPending:
		return model.PresentationState{Tone: model.ToneCaution, Icon: model.IconAlert, Label: "Pending"}
	case model.StatusKindConfirmed:
		return model.PresentationState{Tone: model.ToneInfo, Icon: model.IconAlert, Label: "Confirmed"}
	case model.StatusKindCompleted:
		return model.PresentationState{Tone: model.ToneSuccess, Icon: model.IconCheck, Label: "Completed"}
	case model.StatusKindCancelled:
		return model.PresentationState{Tone: model.ToneDanger, Icon: model.IconCross, Label: "Cancelled"}
	default:
		return model.PresentationState{Tone: model.ToneNeutral, Icon: model.IconNone, Label: status}
	}
}

// Title builds the display name from whatever vehicle fields are
// present, single-spaced. Make and model are both required for a
// vehicle title; otherwise the car ID keeps the title non-empty.
func Title(b model.Booking) string {
	if !has(b.VehicleMake) || !has(b.VehicleModel) {
		return fmt.Sprintf("Car ID: %d", b.CarID)
	}

	parts := make([]string, 0, 4)
	if b.VehicleYear != nil && *b.VehicleYear > 0 {
		parts = append(parts, strconv.Itoa(*b.VehicleYear))
	}
	parts = append(parts, *b.VehicleMake, *b.VehicleModel)
	if has(b.VehicleTrim) {
		parts = append(parts, *b.VehicleTrim)
	}

	return strings.Join(parts, " ")
}

func Subtitle(b model.Booking) string {
	if has(b.ContactName) {
		return *b.ContactName
	}
	return fallbackSubtitle
}

// Card assembles the renderable form of one booking.
func Card(b model.Booking) model.BookingCard {
	return model.BookingCard{
		Booking:  b,
		Title:    Title(b),
		Subtitle: Subtitle(b),
		State:    StateFor(b.Status),
	}
}

func has(s *string) bool {
	return s != nil && *s != ""
}
