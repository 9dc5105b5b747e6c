package stats

import (
	"testing"

	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPlayer(id uint, name string, goals, assists, played int) player.Player {
	return player.Player{
		Model:         gorm.Model{ID: id},
		Name:          name,
		Goals:         goals,
		Assists:       assists,
		MatchesPlayed: played,
	}
}

func intPtr(v int) *int { return &v }

func TestRankByMetricOrdersAndTruncates(t *testing.T) {
	players := []player.Player{
		newPlayer(3, "Cid", 5, 0, 10),
		newPlayer(1, "Alex", 10, 2, 12),
		newPlayer(2, "Ben", 10, 1, 9),
	}

	entries, err := RankByMetric(players, MetricGoals, 2, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Alex and Ben tie on 10 goals; the alphabetically smaller name wins.
	assert.Equal(t, "Alex", entries[0].Name)
	assert.Equal(t, 10, entries[0].Value)
	assert.Equal(t, "Ben", entries[1].Name)
	assert.Equal(t, 10, entries[1].Value)
}

func TestRankByMetricDeterministicAcrossInputOrder(t *testing.T) {
	forward := []player.Player{
		newPlayer(1, "alex", 7, 0, 0),
		newPlayer(2, "Alex", 7, 0, 0),
		newPlayer(3, "Zoe", 9, 0, 0),
	}
	reversed := []player.Player{forward[2], forward[1], forward[0]}

	a, err := RankByMetric(forward, MetricGoals, 0, nil)
	require.NoError(t, err)
	b, err := RankByMetric(reversed, MetricGoals, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	// Case-insensitive name tie falls back to ID.
	assert.Equal(t, uint(3), a[0].PlayerID)
	assert.Equal(t, uint(1), a[1].PlayerID)
	assert.Equal(t, uint(2), a[2].PlayerID)
}

func TestRankByMetricSkipsZeroValues(t *testing.T) {
	players := []player.Player{
		newPlayer(1, "Alex", 0, 5, 3),
		newPlayer(2, "Ben", 2, 0, 3),
	}

	entries, err := RankByMetric(players, MetricGoals, 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ben", entries[0].Name)
}

func TestRankByMetricEmptyInputIsNotAnError(t *testing.T) {
	entries, err := RankByMetric(nil, MetricAssists, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRankByMetricAppliesFilter(t *testing.T) {
	players := []player.Player{
		newPlayer(1, "Alex", 4, 0, 0),
		newPlayer(2, "Ben", 6, 0, 0),
	}
	onlyAlex := func(p player.Player) bool { return p.Name == "Alex" }

	entries, err := RankByMetric(players, MetricGoals, 10, onlyAlex)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Alex", entries[0].Name)
}

func TestRankByMetricRejectsUnknownMetric(t *testing.T) {
	_, err := RankByMetric(nil, Metric("red_cards_squared"), 5, nil)
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "metric", malformed.Field)
}

func TestRankByMetricRejectsNegativeCounters(t *testing.T) {
	players := []player.Player{newPlayer(7, "Rex", -1, 0, 0)}

	_, err := RankByMetric(players, MetricGoals, 5, nil)
	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, uint(7), malformed.PlayerID)
	assert.Equal(t, "goals", malformed.Field)
}

func TestPositionDistributionBucketsAndCounts(t *testing.T) {
	players := []player.Player{
		{Model: gorm.Model{ID: 1}, Name: "A", Position: player.PositionForward},
		{Model: gorm.Model{ID: 2}, Name: "B", Position: player.PositionForward},
		{Model: gorm.Model{ID: 3}, Name: "C", Position: player.PositionGoalkeeper},
		{Model: gorm.Model{ID: 4}, Name: "D", Position: ""},
		{Model: gorm.Model{ID: 5}, Name: "E", Position: player.Position("Libero")},
	}

	dist := PositionDistribution(players)

	assert.Equal(t, 2, dist[player.PositionForward])
	assert.Equal(t, 1, dist[player.PositionGoalkeeper])
	assert.Equal(t, 2, dist[player.PositionUnknown])
	// No zero-count keys.
	_, present := dist[player.PositionDefender]
	assert.False(t, present)

	// Bucket counts sum to the player count exactly; nothing is dropped.
	total := 0
	for _, n := range dist {
		total += n
	}
	assert.Equal(t, len(players), total)
}

func TestPositionDistributionEmpty(t *testing.T) {
	assert.Empty(t, PositionDistribution(nil))
}

func TestPerformanceIndex(t *testing.T) {
	players := []player.Player{
		newPlayer(1, "Alex", 3, 4, 0), // total 7
		newPlayer(2, "Ben", 5, 2, 0),  // total 7, name after Alex
		newPlayer(3, "Cid", 0, 0, 20), // no goal involvement, excluded
		newPlayer(4, "Dan", 9, 1, 0),  // total 10
	}

	entries, err := PerformanceIndex(players, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Dan", entries[0].Name)
	assert.Equal(t, 10, entries[0].Total)
	assert.Equal(t, "Alex", entries[1].Name)
	assert.Equal(t, "Ben", entries[2].Name)
}

func TestPerformanceIndexTruncates(t *testing.T) {
	players := []player.Player{
		newPlayer(1, "Alex", 1, 0, 0),
		newPlayer(2, "Ben", 2, 0, 0),
		newPlayer(3, "Cid", 3, 0, 0),
	}

	entries, err := PerformanceIndex(players, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Cid", entries[0].Name)
}

type leagueItem string

func (l leagueItem) LeagueName() string { return string(l) }

func TestFilterByLeague(t *testing.T) {
	items := []leagueItem{"Premier League", "La Liga", "Premier League"}

	assert.Equal(t, items, FilterByLeague(items, LeagueAll))
	assert.Len(t, FilterByLeague(items, "Premier League"), 2)
	// Exact, case-sensitive match.
	assert.Empty(t, FilterByLeague(items, "premier league"))
	assert.Empty(t, FilterByLeague(items, "Serie A"))
}

func TestMatchSummary(t *testing.T) {
	matches := []match.Match{
		{Status: match.StatusCompleted, HomeScore: intPtr(2), AwayScore: intPtr(1)},
		{Status: match.StatusCompleted, HomeScore: intPtr(0), AwayScore: intPtr(0)},
		{Status: match.StatusScheduled},
	}

	s := MatchSummary(matches)

	assert.Equal(t, 3, s.TotalGoals)
	assert.Equal(t, 2, s.MatchesConsidered)
	assert.InDelta(t, 1.5, s.AverageGoalsPerMatch, 1e-9)
}

func TestMatchSummaryIgnoresCompletedWithoutScores(t *testing.T) {
	matches := []match.Match{
		{Status: match.StatusCompleted}, // completed but scores missing
		{Status: match.StatusCompleted, HomeScore: intPtr(4), AwayScore: intPtr(2)},
	}

	s := MatchSummary(matches)

	assert.Equal(t, 6, s.TotalGoals)
	assert.Equal(t, 1, s.MatchesConsidered)
	assert.InDelta(t, 6.0, s.AverageGoalsPerMatch, 1e-9)
}

func TestMatchSummaryEmptyAvoidsDivisionByZero(t *testing.T) {
	s := MatchSummary(nil)

	assert.Equal(t, 0, s.TotalGoals)
	assert.Equal(t, 0, s.MatchesConsidered)
	assert.Equal(t, 0.0, s.AverageGoalsPerMatch)
}
