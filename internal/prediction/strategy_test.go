package prediction

import (
	"testing"

	"github.com/pratikg-29/footstats/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scorePtr(v int) *int { return &v }

func TestBuildTeamForm(t *testing.T) {
	history := []match.Match{
		{HomeTeamID: 1, AwayTeamID: 2, Status: match.StatusCompleted, HomeScore: scorePtr(3), AwayScore: scorePtr(1)},
		{HomeTeamID: 3, AwayTeamID: 1, Status: match.StatusCompleted, HomeScore: scorePtr(2), AwayScore: scorePtr(2)},
		{HomeTeamID: 1, AwayTeamID: 4, Status: match.StatusCompleted, HomeScore: scorePtr(1), AwayScore: scorePtr(0)},
		// Not completed, must be skipped.
		{HomeTeamID: 1, AwayTeamID: 5, Status: match.StatusScheduled},
		// Completed but the team is not involved.
		{HomeTeamID: 6, AwayTeamID: 7, Status: match.StatusCompleted, HomeScore: scorePtr(5), AwayScore: scorePtr(5)},
	}

	form := BuildTeamForm(1, "United", history)

	assert.Equal(t, 3, form.MatchesPlayed)
	assert.InDelta(t, 2.0, form.AvgGoalsFor, 1e-9)     // (3+2+1)/3
	assert.InDelta(t, 1.0, form.AvgGoalsAgainst, 1e-9) // (1+2+0)/3
	assert.InDelta(t, 2.0/3.0, form.WinRate, 1e-9)     // 2 wins, 1 draw
}

func TestBuildTeamFormWithoutHistoryUsesNeutralPriors(t *testing.T) {
	form := BuildTeamForm(9, "Rovers", nil)

	assert.Equal(t, 0, form.MatchesPlayed)
	assert.InDelta(t, defaultAvgGoals, form.AvgGoalsFor, 1e-9)
	assert.InDelta(t, defaultAvgGoals, form.AvgGoalsAgainst, 1e-9)
	assert.InDelta(t, defaultWinRate, form.WinRate, 1e-9)
}

func TestSeededFormStrategyIsDeterministic(t *testing.T) {
	s := SeededFormStrategy{}
	home := TeamForm{TeamID: 11, Name: "United", WinRate: 0.5, AvgGoalsFor: 1.6, AvgGoalsAgainst: 1.1}
	away := TeamForm{TeamID: 12, Name: "City", WinRate: 0.5, AvgGoalsFor: 1.4, AvgGoalsAgainst: 1.2}

	a := s.Score(home, away)
	b := s.Score(home, away)

	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.HomeWeight, 0.0)
	assert.GreaterOrEqual(t, a.DrawWeight, 0.0)
	assert.GreaterOrEqual(t, a.AwayWeight, 0.0)
	assert.GreaterOrEqual(t, a.HomeScore, 0.0)
	assert.GreaterOrEqual(t, a.AwayScore, 0.0)
}

func TestSeededFormStrategyVariesWithPairing(t *testing.T) {
	s := SeededFormStrategy{}
	home := TeamForm{TeamID: 11, Name: "United", WinRate: 0.5, AvgGoalsFor: 1.6, AvgGoalsAgainst: 1.1}
	away := TeamForm{TeamID: 12, Name: "City", WinRate: 0.5, AvgGoalsFor: 1.4, AvgGoalsAgainst: 1.2}
	other := TeamForm{TeamID: 13, Name: "Rovers", WinRate: 0.5, AvgGoalsFor: 1.4, AvgGoalsAgainst: 1.2}

	a := s.Score(home, away)
	b := s.Score(home, other)

	assert.NotEqual(t, a, b)
}

func TestPoissonStrategyFavorsStrongerSide(t *testing.T) {
	s := PoissonStrategy{}
	strong := TeamForm{TeamID: 1, Name: "United", AvgGoalsFor: 2.4, AvgGoalsAgainst: 0.7}
	weak := TeamForm{TeamID: 2, Name: "Rovers", AvgGoalsFor: 0.8, AvgGoalsAgainst: 2.1}

	f := s.Score(strong, weak)

	assert.Greater(t, f.HomeWeight, f.AwayWeight)
	assert.Greater(t, f.HomeWeight, f.DrawWeight)
	assert.GreaterOrEqual(t, f.AwayWeight, 0.0)
	// The score matrix covers nearly all probability mass.
	assert.InDelta(t, 1.0, f.HomeWeight+f.DrawWeight+f.AwayWeight, 0.01)
	assert.Contains(t, f.Factors, "Expected goals model")
}

func TestPoissonStrategyIsDeterministic(t *testing.T) {
	s := PoissonStrategy{}
	home := TeamForm{TeamID: 1, Name: "United", AvgGoalsFor: 1.5, AvgGoalsAgainst: 1.5}
	away := TeamForm{TeamID: 2, Name: "City", AvgGoalsFor: 1.5, AvgGoalsAgainst: 1.5}

	assert.Equal(t, s.Score(home, away), s.Score(home, away))
}

func TestPoissonPMFSumsToNearlyOne(t *testing.T) {
	pmf := poissonPMF(1.3, 10)

	require.Len(t, pmf, 11)
	var sum float64
	for _, p := range pmf {
		assert.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-4)
}

func TestStrategyByName(t *testing.T) {
	assert.Equal(t, "poisson", StrategyByName("poisson").Name())
	assert.Equal(t, "seeded-form", StrategyByName("seeded-form").Name())
	assert.Equal(t, "seeded-form", StrategyByName("").Name())
	assert.Equal(t, "seeded-form", StrategyByName("nonsense").Name())
}
