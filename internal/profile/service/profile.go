package service

import (
	"context"
	"time"

	"drivedesk/internal/profile/classifier"
	"drivedesk/internal/profile/presenter"
	"drivedesk/internal/profile/validator"
	"drivedesk/pkg/config"
	"drivedesk/pkg/events"
	"drivedesk/pkg/model"
	"drivedesk/pkg/sanitizer"
	"drivedesk/pkg/session"
)

// BookingsFetcher is the read-only slice of the bookings service this
// service needs.
type BookingsFetcher interface {
	ListMine(ctx context.Context, token model.Token) ([]model.Booking, error)
}

type ProfileService interface {
	View(ctx context.Context, provider session.Provider) (*model.ProfileView, error)
	NavLinks() []model.NavLink
}

type profileService struct {
	bookings  BookingsFetcher
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewProfileService(
	bookings BookingsFetcher,
	bookingValidator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ProfileService {
	return &profileService{
		bookings:  bookings,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// View runs one fetch-and-classify cycle: acquire the caller's
// credential, fetch their bookings, split into active and history,
// decorate for display. The steps run strictly in that order and the
// cycle is all-or-nothing: an error means no partial view.
func (s *profileService) View(ctx context.Context, provider session.Provider) (*model.ProfileView, error) {
	token, err := session.Acquire(ctx, provider)
	if err != nil {
		s.cfg.Log.Warn("Profile view refused", "error", err)
		return nil, err
	}

	bookings, err := s.bookings.ListMine(ctx, token)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch bookings", "error", err)
		return nil, err
	}

	for i := range bookings {
		s.normalize(&bookings[i])
		if checkErr := s.validator.Check(&bookings[i]); checkErr != nil {
			// Degraded records are logged and rendered anyway; the
			// remote service owns the data.
			s.cfg.Log.Warn("Received degraded booking record",
				"booking_id", bookings[i].ID,
				"error", checkErr,
			)
		}
	}

	// One instant for the whole collection, so the active/history
	// boundary cannot drift between bookings.
	now := s.now()
	active, history := classifier.Classify(bookings, now)

	view := &model.ProfileView{
		Active:    cards(active),
		History:   cards(history),
		FetchedAt: now,
	}

	s.audit(ctx, view)

	s.cfg.Log.Debug("Profile view assembled",
		"total", len(bookings),
		"active", len(view.Active),
		"history", len(view.History),
	)
	return view, nil
}

func (s *profileService) NavLinks() []model.NavLink {
	return []model.NavLink{
		{Label: "Vehicles", Href: "/vehicles"},
		{Label: "Book a Test Drive", Href: "/book-test-drive"},
		{Label: "My Profile", Href: "/profile"},
	}
}

func (s *profileService) normalize(b *model.Booking) {
	b.PreferredLocation = sanitizer.Clean(b.PreferredLocation)
	b.VehicleMake = sanitizer.CleanPtr(b.VehicleMake)
	b.VehicleModel = sanitizer.CleanPtr(b.VehicleModel)
	b.VehicleTrim = sanitizer.CleanPtr(b.VehicleTrim)
	b.ContactName = sanitizer.CleanPtr(b.ContactName)
}

// audit is fire-and-forget: a lost event never fails the cycle.
func (s *profileService) audit(ctx context.Context, view *model.ProfileView) {
	event := events.ProfileViewed{
		ActiveCount:  len(view.Active),
		HistoryCount: len(view.History),
		FetchedAt:    view.FetchedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish profile.viewed event", "error", err)
	}
}

func cards(bookings []model.Booking) []model.BookingCard {
	out := make([]model.BookingCard, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, presenter.Card(b))
	}
	return out
}
