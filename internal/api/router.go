// Package api serves the league views as read-only JSON over HTTP.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/sam-maryland/sleeper-league-hub/internal/handlers"
	"github.com/sam-maryland/sleeper-league-hub/internal/hub"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// Handler serves the hub views.
type Handler struct {
	service handlers.LeagueService
	logger  *logrus.Logger
}

// NewRouter creates a chi router with middleware and every league route.
// Routes without a league id use the configured league.
func NewRouter(service handlers.LeagueService, logger *logrus.Logger) *chi.Mux {
	h := &Handler{service: service, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(recovery(logger))
	r.Use(requestLogger(logger))

	r.Get("/health", h.Health)
	r.Get("/archive", h.Archive)

	leagueRoutes := func(r chi.Router) {
		r.Get("/standings", h.Standings)
		r.Get("/preseason", h.Preseason)
		r.Get("/playoffs", h.Playoffs)
		r.Get("/history", h.History)
		r.Get("/matchups", h.Matchups)
		r.Get("/members", h.Members)
	}
	r.Group(leagueRoutes)
	r.Route("/leagues/{leagueID}", leagueRoutes)

	return r
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	success(w, r, h.logger, map[string]string{"status": "ok"})
}

// Standings serves live standings or the preseason ranking.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Standings(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

// Preseason serves the preseason ranking.
func (h *Handler) Preseason(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.PreseasonRanking(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

// Playoffs serves the playoff picture.
func (h *Handler) Playoffs(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.PlayoffPicture(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

// History serves the season chain; ?seasons=N bounds it.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	seasons := hub.DefaultHistorySeasons
	if raw := r.URL.Query().Get("seasons"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			failure(w, r, h.logger, http.StatusBadRequest, "INVALID_PARAMETER", "seasons must be a positive integer")
			return
		}
		seasons = n
	}

	view, err := h.service.History(r.Context(), chi.URLParam(r, "leagueID"), seasons)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

// Matchups serves a week's scoreboard; ?week=N picks the week, otherwise
// the current NFL week is used.
func (h *Handler) Matchups(w http.ResponseWriter, r *http.Request) {
	week := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > handlers.MaxWeek {
			failure(w, r, h.logger, http.StatusBadRequest, "INVALID_PARAMETER", fmt.Sprintf("week must be between 1 and %d", handlers.MaxWeek))
			return
		}
		week = n
	}

	view, err := h.service.Matchups(r.Context(), chi.URLParam(r, "leagueID"), week)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

// Members serves the league's users and their rosters.
func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Members(r.Context(), chi.URLParam(r, "leagueID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

// Archive serves every completed season.
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Archive(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	success(w, r, h.logger, view)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, hub.ErrNoLeague):
		failure(w, r, h.logger, http.StatusBadRequest, "LEAGUE_REQUIRED", err.Error())
	case sleeper.IsNotFound(err):
		failure(w, r, h.logger, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("Upstream request failed")
		failure(w, r, h.logger, http.StatusBadGateway, "UPSTREAM_ERROR", "league data is temporarily unavailable")
	}
}
