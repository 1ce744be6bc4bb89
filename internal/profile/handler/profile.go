package handler

import (
	"net/http"

	"drivedesk/internal/profile/service"
	"drivedesk/pkg/httputil"
	"drivedesk/pkg/logger"
	"drivedesk/pkg/model"
	"drivedesk/pkg/session"

	"github.com/julienschmidt/httprouter"
)

// SessionProviderFactory picks the session source for one request:
// the bearer header on the request itself, or a remote identity
// service, depending on deployment.
type SessionProviderFactory func(r *http.Request) session.Provider

type ProfileHandler struct {
	service  service.ProfileService
	sessions SessionProviderFactory
	log      *logger.Logger
}

func NewProfileHandler(service service.ProfileService, sessions SessionProviderFactory, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

func (h *ProfileHandler) GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	provider := h.sessions(r)

	view, err := h.service.View(r.Context(), provider)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetBookings", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "GetBookings", "error", err)
	}
}

type NavResponse struct {
	Links []model.NavLink `json:"links"`
}

func (h *ProfileHandler) GetNav(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, NavResponse{Links: h.service.NavLinks()}); err != nil {
		h.log.Error("failed to write success response", "handler", "GetNav", "error", err)
	}
}

func (h *ProfileHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/profile/bookings", h.GetBookings)
	router.GET("/api/v1/profile/nav", h.GetNav)
}
