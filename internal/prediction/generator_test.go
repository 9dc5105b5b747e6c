package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	existing map[uint]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{existing: make(map[uint]bool)}
}

func (f *fakeStore) ExistsForMatch(matchID uint) (bool, error) {
	return f.existing[matchID], nil
}

func homeAwayForms() (TeamForm, TeamForm) {
	home := TeamForm{TeamID: 1, Name: "United", MatchesPlayed: 10, WinRate: 0.6, AvgGoalsFor: 1.8, AvgGoalsAgainst: 1.0}
	away := TeamForm{TeamID: 2, Name: "City", MatchesPlayed: 10, WinRate: 0.4, AvgGoalsFor: 1.2, AvgGoalsAgainst: 1.4}
	return home, away
}

func TestGenerateRejectsSameTeamPair(t *testing.T) {
	gen := NewGenerator(newFakeStore(), nil)
	form := TeamForm{TeamID: 5, Name: "United"}

	_, err := gen.Generate(1, form, form)

	var invalid *InvalidPairError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, uint(5), invalid.TeamID)
}

func TestGenerateRejectsSecondPredictionForMatch(t *testing.T) {
	store := newFakeStore()
	gen := NewGenerator(store, nil)
	home, away := homeAwayForms()

	first, err := gen.Generate(42, home, away)
	require.NoError(t, err)
	require.NotNil(t, first)

	// The caller persists the first forecast; the store now knows about it.
	store.existing[42] = true

	_, err = gen.Generate(42, home, away)
	var duplicate *DuplicatePredictionError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, uint(42), duplicate.MatchID)
}

func TestGenerateProducesWellFormedPrediction(t *testing.T) {
	gen := NewGenerator(newFakeStore(), nil)
	home, away := homeAwayForms()

	pred, err := gen.Generate(7, home, away)
	require.NoError(t, err)

	assert.Equal(t, uint(7), pred.MatchID)
	assert.GreaterOrEqual(t, pred.PredictedHomeScore, 0.0)
	assert.GreaterOrEqual(t, pred.PredictedAwayScore, 0.0)
	// Scores carry at most 2 decimals.
	assert.Equal(t, round2(pred.PredictedHomeScore), pred.PredictedHomeScore)
	assert.Equal(t, round2(pred.PredictedAwayScore), pred.PredictedAwayScore)

	sum := pred.HomeWinProbability + pred.DrawProbability + pred.AwayWinProbability
	assert.Equal(t, 100.0, round2(sum))

	require.NotEmpty(t, pred.KeyFactors)
	seen := make(map[string]bool)
	for _, f := range pred.KeyFactors {
		assert.False(t, seen[f], "duplicate key factor %q", f)
		seen[f] = true
	}

	assert.NotEmpty(t, pred.AIAnalysis)
	assert.Equal(t, "seeded-form", pred.Strategy)
}

func TestGenerateIsReproducibleForSamePairing(t *testing.T) {
	home, away := homeAwayForms()

	a, err := NewGenerator(newFakeStore(), nil).Generate(9, home, away)
	require.NoError(t, err)
	b, err := NewGenerator(newFakeStore(), nil).Generate(9, home, away)
	require.NoError(t, err)

	assert.Equal(t, a.HomeWinProbability, b.HomeWinProbability)
	assert.Equal(t, a.DrawProbability, b.DrawProbability)
	assert.Equal(t, a.AwayWinProbability, b.AwayWinProbability)
	assert.Equal(t, a.PredictedHomeScore, b.PredictedHomeScore)
	assert.Equal(t, a.PredictedAwayScore, b.PredictedAwayScore)
}

func TestNormalizeZeroWeightsFallsBackToUniformSplit(t *testing.T) {
	h, d, a := normalizeProbabilities(0, 0, 0)

	assert.Equal(t, 33.34, h)
	assert.Equal(t, 33.33, d)
	assert.Equal(t, 33.33, a)
	assert.Equal(t, 100.0, round2(h+d+a))
}

func TestNormalizeResidualGoesToLargestComponent(t *testing.T) {
	// Equal weights each round to 33.33, leaving a 0.01 residual. The
	// correction prefers home over draw over away on ties.
	h, d, a := normalizeProbabilities(1, 1, 1)

	assert.Equal(t, 33.34, h)
	assert.Equal(t, 33.33, d)
	assert.Equal(t, 33.33, a)
}

func TestNormalizeSumsToExactlyOneHundred(t *testing.T) {
	cases := [][3]float64{
		{1, 1, 1},
		{0.7, 0.2, 0.1},
		{3, 3, 1},
		{1e-9, 2e-9, 3e-9},
		{97.5, 1.25, 1.25},
		{0.333333, 0.333333, 0.333334},
		{123456, 654321, 111111},
	}
	for _, c := range cases {
		h, d, a := normalizeProbabilities(c[0], c[1], c[2])
		assert.Equal(t, 100.0, round2(h+d+a), "weights %v", c)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.GreaterOrEqual(t, d, 0.0)
		assert.GreaterOrEqual(t, a, 0.0)
	}
}

func TestNormalizeClampsNegativeWeights(t *testing.T) {
	h, d, a := normalizeProbabilities(-5, 1, 1)

	assert.Equal(t, 0.0, h)
	assert.Equal(t, 100.0, round2(h+d+a))
	assert.Equal(t, d, a)
}

func TestPredictedOutcomeTieBreak(t *testing.T) {
	// Three-way tie resolves to home.
	p := &Prediction{HomeWinProbability: 33.34, DrawProbability: 33.34, AwayWinProbability: 33.34}
	assert.Equal(t, OutcomeHomeWin, p.PredictedOutcome())

	// Draw/away tie above home resolves to draw.
	p = &Prediction{HomeWinProbability: 20, DrawProbability: 40, AwayWinProbability: 40}
	assert.Equal(t, OutcomeDraw, p.PredictedOutcome())

	// Strict maxima behave as expected.
	p = &Prediction{HomeWinProbability: 50, DrawProbability: 30, AwayWinProbability: 20}
	assert.Equal(t, OutcomeHomeWin, p.PredictedOutcome())
	p = &Prediction{HomeWinProbability: 10, DrawProbability: 30, AwayWinProbability: 60}
	assert.Equal(t, OutcomeAwayWin, p.PredictedOutcome())
}

func TestKeyFactorsDeduplicated(t *testing.T) {
	factors := keyFactors(OutcomeHomeWin, []string{"Home advantage", "Expected goals model", ""})

	assert.Contains(t, factors, "Expected goals model")
	counts := make(map[string]int)
	for _, f := range factors {
		counts[f]++
		assert.NotEmpty(t, f)
	}
	assert.Equal(t, 1, counts["Home advantage"])
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, round2(33.333333))
	assert.Equal(t, 33.34, round2(33.336))
	assert.Equal(t, 0.0, round2(0))
	assert.InDelta(t, 99.99, round2(99.994), 1e-9)
}
