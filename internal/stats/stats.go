// Package stats is the aggregation engine: pure, deterministic transformations
// from an in-memory snapshot of team/player/match records into display-ready
// aggregates. Nothing here touches the database; callers pass a snapshot in
// and get a new value back.
package stats

import (
	"sort"
	"strings"

	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/internal/player"
)

// LeagueAll is the sentinel league filter value meaning "no filter".
const LeagueAll = "all"

// Metric selects which player counter a leaderboard ranks by.
type Metric string

const (
	MetricGoals         Metric = "goals"
	MetricAssists       Metric = "assists"
	MetricMatchesPlayed Metric = "matches_played"
)

// LeaderboardEntry is one row of a ranked leaderboard.
type LeaderboardEntry struct {
	PlayerID uint   `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team,omitempty"`
	Value    int    `json:"value"`
}

// PerformanceEntry is one row of the combined goals+assists index.
type PerformanceEntry struct {
	PlayerID uint   `json:"player_id"`
	Name     string `json:"name"`
	Team     string `json:"team,omitempty"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Total    int    `json:"total"`
}

// Summary holds goal totals over a set of completed matches.
type Summary struct {
	TotalGoals           int     `json:"total_goals"`
	MatchesConsidered    int     `json:"matches_considered"`
	AverageGoalsPerMatch float64 `json:"average_goals_per_match"`
}

// LeagueScoped is implemented by any entity that belongs to a league.
type LeagueScoped interface {
	LeagueName() string
}

// metricValue reads the counter the metric names, or reports an unknown metric.
func metricValue(p player.Player, metric Metric) (int, bool) {
	switch metric {
	case MetricGoals:
		return p.Goals, true
	case MetricAssists:
		return p.Assists, true
	case MetricMatchesPlayed:
		return p.MatchesPlayed, true
	}
	return 0, false
}

// validateCounters rejects negative counters. Counters default to zero at the
// model layer, so anything below zero means the record is corrupt.
func validateCounters(p player.Player) error {
	checks := []struct {
		field string
		value int
	}{
		{"goals", p.Goals},
		{"assists", p.Assists},
		{"matches_played", p.MatchesPlayed},
		{"yellow_cards", p.YellowCards},
		{"red_cards", p.RedCards},
	}
	for _, c := range checks {
		if c.value < 0 {
			return &MalformedInputError{Field: c.field, Value: c.value, PlayerID: p.ID}
		}
	}
	if p.MarketValue != nil && *p.MarketValue < 0 {
		return &MalformedInputError{Field: "market_value", Value: *p.MarketValue, PlayerID: p.ID}
	}
	return nil
}

// lessByNameThenID is the shared tie-break: ascending case-insensitive name,
// then ascending ID so equal names still order the same on every run.
func lessByNameThenID(aName string, aID uint, bName string, bID uint) bool {
	an, bn := strings.ToLower(aName), strings.ToLower(bName)
	if an != bn {
		return an < bn
	}
	return aID < bID
}

// RankByMetric builds a leaderboard of players ranked by the chosen metric.
// Players whose metric value is zero are omitted. Ordering is descending by
// value with ties broken by name then ID, so the result is reproducible
// regardless of input order. A non-positive limit means no truncation.
// An optional filter keeps only players it accepts; pass nil for no filter.
func RankByMetric(players []player.Player, metric Metric, limit int, filter func(player.Player) bool) ([]LeaderboardEntry, error) {
	if _, ok := metricValue(player.Player{}, metric); !ok {
		return nil, &MalformedInputError{Field: "metric", Value: string(metric)}
	}

	entries := make([]LeaderboardEntry, 0, len(players))
	for _, p := range players {
		if err := validateCounters(p); err != nil {
			return nil, err
		}
		if filter != nil && !filter(p) {
			continue
		}
		value, _ := metricValue(p, metric)
		if value <= 0 {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			PlayerID: p.ID,
			Name:     p.Name,
			Team:     p.TeamName(),
			Value:    value,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return lessByNameThenID(entries[i].Name, entries[i].PlayerID, entries[j].Name, entries[j].PlayerID)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// PositionDistribution counts players per position. Positions outside the
// fixed enumeration land in the Unknown bucket; keys appear only when their
// count is positive, so an empty snapshot yields an empty map.
func PositionDistribution(players []player.Player) map[player.Position]int {
	dist := make(map[player.Position]int)
	for _, p := range players {
		pos := p.Position
		if !pos.IsKnown() {
			pos = player.PositionUnknown
		}
		dist[pos]++
	}
	return dist
}

// PerformanceIndex ranks players by combined goals plus assists. Only players
// with at least one goal or assist appear. Same tie-break and truncation rules
// as RankByMetric.
func PerformanceIndex(players []player.Player, limit int) ([]PerformanceEntry, error) {
	entries := make([]PerformanceEntry, 0, len(players))
	for _, p := range players {
		if err := validateCounters(p); err != nil {
			return nil, err
		}
		if p.Goals <= 0 && p.Assists <= 0 {
			continue
		}
		entries = append(entries, PerformanceEntry{
			PlayerID: p.ID,
			Name:     p.Name,
			Team:     p.TeamName(),
			Goals:    p.Goals,
			Assists:  p.Assists,
			Total:    p.Goals + p.Assists,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return lessByNameThenID(entries[i].Name, entries[i].PlayerID, entries[j].Name, entries[j].PlayerID)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// FilterByLeague keeps entities belonging to the given league. The LeagueAll
// sentinel returns the input unchanged; any other value is matched exactly,
// case-sensitive.
func FilterByLeague[T LeagueScoped](items []T, league string) []T {
	if league == LeagueAll {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if item.LeagueName() == league {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// MatchSummary totals goals over completed matches with recorded scores and
// derives the per-match average. Matches that are not completed, or completed
// without scores, are not considered. An empty set yields a zero average
// rather than dividing by zero.
func MatchSummary(matches []match.Match) Summary {
	var s Summary
	for _, m := range matches {
		if m.Status != match.StatusCompleted || m.HomeScore == nil || m.AwayScore == nil {
			continue
		}
		s.TotalGoals += *m.HomeScore + *m.AwayScore
		s.MatchesConsidered++
	}
	if s.MatchesConsidered > 0 {
		s.AverageGoalsPerMatch = float64(s.TotalGoals) / float64(s.MatchesConsidered)
	}
	return s
}
