package presenter

import (
	"testing"

	"drivedesk/pkg/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestStateFor(t *testing.T) {
	tests := []struct {
		status   string
		wantTone model.BadgeTone
		wantIcon model.Icon
		wantText string
	}{
		{"pending", model.ToneCaution, model.IconAlert, "Pending"},
		{"confirmed", model.ToneInfo, model.IconAlert, "Confirmed"},
		{"completed", model.ToneSuccess, model.IconCheck, "Completed"},
		{"cancelled", model.ToneDanger, model.IconCross, "Cancelled"},
		{"rescheduled", model.ToneNeutral, model.IconNone, "rescheduled"},
		{"", model.ToneNeutral, model.IconNone, ""},
		{"PENDING", model.ToneNeutral, model.IconNone, "PENDING"},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			state := StateFor(tt.status)
			if state.Tone != tt.wantTone {
				t.Errorf("tone = %s, want %s", state.Tone, tt.wantTone)
			}
			if state.Icon != tt.wantIcon {
				t.Errorf("icon = %q, want %q", state.Icon, tt.wantIcon)
			}
			if state.Label != tt.wantText {
				t.Errorf("label = %q, want %q", state.Label, tt.wantText)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    string
	}{
		{
			name: "all vehicle fields",
			booking: model.Booking{
				CarID:        42,
				VehicleYear:  intPtr(2024),
				VehicleMake:  strPtr("Toyota"),
				VehicleModel: strPtr("Corolla"),
				VehicleTrim:  strPtr("XSE"),
			},
			want: "2024 Toyota Corolla XSE",
		},
		{
			name: "no year no trim",
			booking: model.Booking{
				CarID:        42,
				VehicleMake:  strPtr("Toyota"),
				VehicleModel: strPtr("Camry"),
			},
			want: "Toyota Camry",
		},
		{
			name: "trim without year",
			booking: model.Booking{
				CarID:        42,
				VehicleMake:  strPtr("Toyota"),
				VehicleModel: strPtr("RAV4"),
				VehicleTrim:  strPtr("Limited"),
			},
			want: "Toyota RAV4 Limited",
		},
		{
			name:    "no vehicle fields falls back to car ID",
			booking: model.Booking{CarID: 42},
			want:    "Car ID: 42",
		},
		{
			name: "make without model falls back to car ID",
			booking: model.Booking{
				CarID:       7,
				VehicleMake: strPtr("Toyota"),
			},
			want: "Car ID: 7",
		},
		{
			name: "empty make falls back to car ID",
			booking: model.Booking{
				CarID:        7,
				VehicleMake:  strPtr(""),
				VehicleModel: strPtr("Corolla"),
			},
			want: "Car ID: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Title(tt.booking)
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
			if got == "" {
				t.Error("Title() must never be empty")
			}
		})
	}
}

func TestSubtitle(t *testing.T) {
	withName := model.Booking{ContactName: strPtr("Dana Levi")}
	if got := Subtitle(withName); got != "Dana Levi" {
		t.Errorf("Subtitle() = %q, want contact name", got)
	}

	if got := Subtitle(model.Booking{}); got != "Test Drive Booking" {
		t.Errorf("Subtitle() fallback = %q, want %q", got, "Test Drive Booking")
	}
}

func TestCard(t *testing.T) {
	b := model.Booking{
		ID:           "bk-1",
		CarID:        9,
		Status:       "confirmed",
		VehicleYear:  intPtr(2025),
		VehicleMake:  strPtr("Toyota"),
		VehicleModel: strPtr("GR86"),
	}

	card := Card(b)

	if card.ID != "bk-1" {
		t.Errorf("card must carry the booking snapshot, got id %q", card.ID)
	}
	if card.Title != "2025 Toyota GR86" {
		t.Errorf("card title = %q", card.Title)
	}
	if card.State.Tone != model.ToneInfo {
		t.Errorf("card tone = %s, want %s", card.State.Tone, model.ToneInfo)
	}
}
