package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "drivedesk/pkg/errors"
)

func TestListMine_SendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookings":[]}`))
	}))
	defer server.Close()

	c := NewBookingsClient(server.URL, 5*time.Second)
	if _, err := c.ListMine(context.Background(), "tok-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestListMine_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bookings/mine" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookings":[
			{"id":"b1","car_id":3,"status":"pending","booking_date":"2026-04-01T10:00:00Z"},
			{"id":"b2","car_id":4,"status":"completed","booking_date":"2026-01-01T10:00:00Z"}
		]}`))
	}))
	defer server.Close()

	c := NewBookingsClient(server.URL, 5*time.Second)
	bookings, err := c.ListMine(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(bookings))
	}
	if bookings[0].ID != "b1" || bookings[1].ID != "b2" {
		t.Errorf("bookings out of order: %s, %s", bookings[0].ID, bookings[1].ID)
	}
	if bookings[0].Status != "pending" {
		t.Errorf("status = %q", bookings[0].Status)
	}
}

func TestListMine_MissingBookingsFieldIsEmptyList(t *testing.T) {
	bodies := []string{`{}`, `{"bookings":null}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			c := NewBookingsClient(server.URL, 5*time.Second)
			bookings, err := c.ListMine(context.Background(), "tok")
			if err != nil {
				t.Fatalf("degraded success body must not be an error, got: %v", err)
			}
			if bookings == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(bookings) != 0 {
				t.Fatalf("expected 0 bookings, got %d", len(bookings))
			}
		})
	}
}

func TestListMine_ErrorPayloadMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"Account suspended"}`, "Account suspended"},
		{"error field", `{"error":"Forbidden"}`, "Forbidden"},
		{"code field", `{"code":"ACCOUNT_LOCKED"}`, "ACCOUNT_LOCKED"},
		{"message wins over error and code", `{"message":"Account suspended","error":"Forbidden","code":"ACCOUNT_LOCKED"}`, "Account suspended"},
		{"error wins over code", `{"error":"Forbidden","code":"ACCOUNT_LOCKED"}`, "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewBookingsClient(server.URL, 5*time.Second)
			_, err := c.ListMine(context.Background(), "tok")
			if err == nil {
				t.Fatal("expected error for non-2xx response")
			}

			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeUpstream {
				t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeUpstream)
			}
			if appErr.Message != tt.want {
				t.Errorf("message = %q, want %q", appErr.Message, tt.want)
			}
		})
	}
}

func TestListMine_UnparseableErrorPayloadFallsBackToGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>boom</html>`))
	}))
	defer server.Close()

	c := NewBookingsClient(server.URL, 5*time.Second)
	_, err := c.ListMine(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Message != "Failed to fetch bookings" {
		t.Errorf("message = %q, want generic fallback", appErr.Message)
	}
}

func TestListMine_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	c := NewBookingsClient(server.URL, 1*time.Second)
	_, err := c.ListMine(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error when upstream is unreachable")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeUpstream {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeUpstream)
	}
	if appErr.Message != "Failed to fetch bookings" {
		t.Errorf("message = %q, want generic fallback", appErr.Message)
	}
}
