package classifier

import (
	"testing"
	"time"

	"drivedesk/pkg/model"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func booking(id, status string, date time.Time) model.Booking {
	return model.Booking{
		ID:          id,
		CarID:       1,
		BookingDate: date,
		Status:      status,
	}
}

func TestClassify_PartitionRules(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	nextYear := now.AddDate(1, 0, 0)
	lastYear := now.AddDate(-1, 0, 0)

	tests := []struct {
		name       string
		status     string
		date       time.Time
		wantActive bool
	}{
		{"pending tomorrow is active", model.StatusPending, tomorrow, true},
		{"confirmed tomorrow is active", model.StatusConfirmed, tomorrow, true},
		{"cancelled next year is history despite future date", model.StatusCancelled, nextYear, false},
		{"completed tomorrow is history despite future date", model.StatusCompleted, tomorrow, false},
		{"pending last year is history despite open status", model.StatusPending, lastYear, false},
		{"confirmed yesterday is history despite open status", model.StatusConfirmed, yesterday, false},
		{"confirmed at exactly now is active (inclusive boundary)", model.StatusConfirmed, now, true},
		{"unknown status tomorrow is history", "rescheduled", tomorrow, false},
		{"unknown status yesterday is history", "no_show", yesterday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, history := Classify([]model.Booking{booking("b1", tt.status, tt.date)}, now)

			if tt.wantActive {
				if len(active) != 1 || len(history) != 0 {
					t.Fatalf("expected active, got active=%d history=%d", len(active), len(history))
				}
			} else {
				if len(active) != 0 || len(history) != 1 {
					t.Fatalf("expected history, got active=%d history=%d", len(active), len(history))
				}
			}
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	bookings := []model.Booking{
		booking("b1", model.StatusPending, tomorrow),
		booking("b2", model.StatusCompleted, yesterday),
		booking("b3", model.StatusCancelled, tomorrow),
		booking("b4", "waitlisted", tomorrow),
		booking("b5", model.StatusConfirmed, yesterday),
	}

	active, history := Classify(bookings, now)

	if len(active)+len(history) != len(bookings) {
		t.Fatalf("partition not total: %d + %d != %d", len(active), len(history), len(bookings))
	}

	seen := map[string]int{}
	for _, b := range active {
		seen[b.ID]++
	}
	for _, b := range history {
		seen[b.ID]++
	}
	for _, b := range bookings {
		if seen[b.ID] != 1 {
			t.Errorf("booking %s appears %d times across partitions, want exactly 1", b.ID, seen[b.ID])
		}
	}
}

func TestClassify_Stability(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	bookings := []model.Booking{
		booking("a1", model.StatusPending, tomorrow),
		booking("h1", model.StatusCompleted, yesterday),
		booking("a2", model.StatusConfirmed, tomorrow),
		booking("h2", model.StatusCancelled, yesterday),
		booking("a3", model.StatusPending, tomorrow.Add(time.Hour)),
		booking("h3", model.StatusPending, yesterday),
	}

	active, history := Classify(bookings, now)

	wantActive := []string{"a1", "a2", "a3"}
	wantHistory := []string{"h1", "h2", "h3"}

	if len(active) != len(wantActive) {
		t.Fatalf("expected %d active, got %d", len(wantActive), len(active))
	}
	for i, id := range wantActive {
		if active[i].ID != id {
			t.Errorf("active[%d] = %s, want %s (order not preserved)", i, active[i].ID, id)
		}
	}

	if len(history) != len(wantHistory) {
		t.Fatalf("expected %d history, got %d", len(wantHistory), len(history))
	}
	for i, id := range wantHistory {
		if history[i].ID != id {
			t.Errorf("history[%d] = %s, want %s (order not preserved)", i, history[i].ID, id)
		}
	}
}

func TestClassify_EndToEndScenario(t *testing.T) {
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	bookings := []model.Booking{
		booking("b1", model.StatusPending, tomorrow),
		booking("b2", model.StatusCompleted, yesterday),
		booking("b3", model.StatusCancelled, tomorrow),
	}

	active, history := Classify(bookings, now)

	if len(active) != 1 || active[0].ID != "b1" {
		t.Errorf("expected active = [b1], got %v", ids(active))
	}
	if len(history) != 2 || history[0].ID != "b2" || history[1].ID != "b3" {
		t.Errorf("expected history = [b2 b3], got %v", ids(history))
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	active, history := Classify([]model.Booking{}, now)
	if active == nil || history == nil {
		t.Fatal("expected non-nil slices for empty input")
	}
	if len(active) != 0 || len(history) != 0 {
		t.Fatalf("expected empty partitions, got active=%d history=%d", len(active), len(history))
	}
}

func ids(bookings []model.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}
