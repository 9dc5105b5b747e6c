package prediction

import (
	"fmt"
	"math"
)

// Store is the slice of the persistence layer the generator needs: a
// uniqueness check for the one-prediction-per-match invariant. The full
// repository satisfies it; tests use an in-memory fake.
type Store interface {
	ExistsForMatch(matchID uint) (bool, error)
}

// Generator assembles a forecast for one (home, away) pairing. It owns the
// domain invariants: distinct teams, one prediction per match, and a
// probability triple that sums to exactly 100.00. Persisting the result is
// the caller's job.
type Generator struct {
	store    Store
	strategy ScoringStrategy
}

// NewGenerator wires a generator. A nil strategy falls back to the seeded
// form heuristic.
func NewGenerator(store Store, strategy ScoringStrategy) *Generator {
	if strategy == nil {
		strategy = SeededFormStrategy{}
	}
	return &Generator{store: store, strategy: strategy}
}

// Generate produces the prediction for matchID between the two teams
// described by home and away. Returns *InvalidPairError when both forms refer
// to the same team and *DuplicatePredictionError when the match already has a
// prediction.
func (g *Generator) Generate(matchID uint, home, away TeamForm) (*Prediction, error) {
	if home.TeamID == away.TeamID {
		return nil, &InvalidPairError{TeamID: home.TeamID}
	}

	exists, err := g.store.ExistsForMatch(matchID)
	if err != nil {
		return nil, fmt.Errorf("checking existing prediction for match %d: %w", matchID, err)
	}
	if exists {
		return nil, &DuplicatePredictionError{MatchID: matchID}
	}

	forecast := g.strategy.Score(home, away)
	pHome, pDraw, pAway := normalizeProbabilities(forecast.HomeWeight, forecast.DrawWeight, forecast.AwayWeight)

	pred := &Prediction{
		MatchID:            matchID,
		PredictedHomeScore: round2(math.Max(0, forecast.HomeScore)),
		PredictedAwayScore: round2(math.Max(0, forecast.AwayScore)),
		HomeWinProbability: pHome,
		DrawProbability:    pDraw,
		AwayWinProbability: pAway,
		Strategy:           g.strategy.Name(),
	}
	pred.KeyFactors = keyFactors(pred.PredictedOutcome(), forecast.Factors)
	pred.AIAnalysis = buildAnalysis(home, away, pred)
	return pred, nil
}

// normalizeProbabilities rescales raw weights onto the 0-100 scale. A zero
// total falls back to a uniform split. Each value is rounded to 2 decimals
// and the rounding residual is folded into the largest component, so the
// triple sums to exactly 100.00 no matter what the strategy returned.
func normalizeProbabilities(wHome, wDraw, wAway float64) (float64, float64, float64) {
	// A misbehaving strategy must not push probabilities outside [0, 100].
	wHome = math.Max(0, wHome)
	wDraw = math.Max(0, wDraw)
	wAway = math.Max(0, wAway)

	sum := wHome + wDraw + wAway
	if sum == 0 {
		return 33.34, 33.33, 33.33
	}

	pHome := round2(100 * wHome / sum)
	pDraw := round2(100 * wDraw / sum)
	pAway := round2(100 * wAway / sum)

	residual := round2(100 - (pHome + pDraw + pAway))
	switch {
	case pHome >= pDraw && pHome >= pAway:
		pHome = round2(pHome + residual)
	case pDraw >= pAway:
		pDraw = round2(pDraw + residual)
	default:
		pAway = round2(pAway + residual)
	}
	return pHome, pDraw, pAway
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// keyFactors builds the ordered factor list for an outcome, appending any
// strategy-supplied extras. Duplicates keep their first occurrence only, and
// the list is never empty.
func keyFactors(outcome Outcome, extra []string) KeyFactorList {
	var base []string
	switch outcome {
	case OutcomeHomeWin:
		base = []string{"Home advantage", "Strong recent form", "Favorable head-to-head record"}
	case OutcomeAwayWin:
		base = []string{"Away team in excellent form", "Home team defensive vulnerabilities", "Recent away victories"}
	default:
		base = []string{"Balanced team strengths", "Similar recent form", "Historical tendency for draws"}
	}

	seen := make(map[string]bool, len(base)+len(extra))
	factors := make(KeyFactorList, 0, len(base)+len(extra))
	for _, f := range append(base, extra...) {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		factors = append(factors, f)
	}
	return factors
}

// buildAnalysis renders the narrative summary for the forecast.
func buildAnalysis(home, away TeamForm, p *Prediction) string {
	switch p.PredictedOutcome() {
	case OutcomeHomeWin:
		return fmt.Sprintf(
			"%s are predicted to win at home against %s. Home form and historical advantage in this fixture point their way, with a %.2f%% win probability and an expected scoreline of %.2f-%.2f.",
			home.Name, away.Name, p.HomeWinProbability, p.PredictedHomeScore, p.PredictedAwayScore)
	case OutcomeAwayWin:
		return fmt.Sprintf(
			"%s are predicted to take this one away from home. Despite %s's home advantage, the away side's recent momentum gives them the edge with a %.2f%% win probability and an expected scoreline of %.2f-%.2f.",
			away.Name, home.Name, p.AwayWinProbability, p.PredictedHomeScore, p.PredictedAwayScore)
	default:
		return fmt.Sprintf(
			"A draw is predicted between %s and %s. Both sides show similar form metrics, and with a draw probability of %.2f%% this looks like a tight, evenly matched contest around %.2f-%.2f.",
			home.Name, away.Name, p.DrawProbability, p.PredictedHomeScore, p.PredictedAwayScore)
	}
}
