package hub

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sam-maryland/sleeper-league-hub/internal/league"
)

// ArchiveView lists every completed season, most recent first.
type ArchiveView struct {
	CurrentSeason string               `json:"current_season"`
	Years         []league.YearSummary `json:"years"`
	Notice        string               `json:"notice,omitempty"`
}

// Archive builds the past-seasons view from the season store. A missing or
// failing store yields an empty archive.
func (s *Service) Archive(ctx context.Context) (*ArchiveView, error) {
	current := s.resolveCurrentSeason(ctx)
	view := &ArchiveView{
		CurrentSeason: current,
		Years:         []league.YearSummary{},
	}

	if s.store == nil {
		view.Notice = "season archive is not configured"
		return view, nil
	}

	rows, err := s.store.ListSeasonRows(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Season archive unavailable")
		view.Notice = "season archive is unavailable"
		return view, nil
	}

	view.Years = league.BuildArchive(rows, league.ArchiveOptions{
		CurrentSeason: current,
		LeagueNames:   s.settings.GetLeagueSettings(s.leagueID).ArchiveNames,
	})

	s.logger.WithFields(logrus.Fields{
		"rows":           len(rows),
		"years":          len(view.Years),
		"current_season": current,
	}).Info("Built season archive")

	return view, nil
}

// resolveCurrentSeason prefers the configured season and asks Sleeper
// otherwise. An unknown season excludes nothing from the archive.
func (s *Service) resolveCurrentSeason(ctx context.Context) string {
	if s.currentSeason != "" {
		return s.currentSeason
	}
	state, err := s.client.GetNFLState(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Could not determine current season")
		return ""
	}
	return state.Season
}
