package prediction

import (
	"github.com/pratikg-29/footstats/internal/match"
	"gorm.io/gorm"
)

// Outcome is the predicted match result: home win, draw or away win.
type Outcome string

const (
	OutcomeHomeWin Outcome = "H"
	OutcomeDraw    Outcome = "D"
	OutcomeAwayWin Outcome = "A"
)

// Prediction is the forecast for one match. At most one prediction exists per
// match; the unique index makes the duplicate check and the insert atomic with
// respect to concurrent requests for the same match. Rows are created once and
// never mutated, and disappear only when their match is deleted.
type Prediction struct {
	gorm.Model
	MatchID uint         `json:"match_id" gorm:"uniqueIndex;not null"`
	Match   *match.Match `json:"match,omitempty" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`

	PredictedHomeScore float64 `json:"predicted_home_score" gorm:"not null"`
	PredictedAwayScore float64 `json:"predicted_away_score" gorm:"not null"`

	// Probabilities on a 0-100 scale, 2-decimal precision, summing to exactly
	// 100.00 after the rounding-residual correction.
	HomeWinProbability float64 `json:"home_win_probability" gorm:"not null"`
	DrawProbability    float64 `json:"draw_probability" gorm:"not null"`
	AwayWinProbability float64 `json:"away_win_probability" gorm:"not null"`

	KeyFactors KeyFactorList `json:"key_factors" gorm:"type:json;serializer:json"`
	AIAnalysis string        `json:"ai_analysis" gorm:"type:text"`
	Strategy   string        `json:"strategy"`
}

// KeyFactorList is an ordered, duplicate-free list of short factor labels.
type KeyFactorList []string

// PredictedOutcome returns the outcome with the largest probability. Exact
// ties resolve home over draw over away; chaining plain greater-than
// comparisons would silently favor whichever branch runs first, so the
// preference order is fixed here and covered by tests.
func (p *Prediction) PredictedOutcome() Outcome {
	if p.HomeWinProbability >= p.DrawProbability && p.HomeWinProbability >= p.AwayWinProbability {
		return OutcomeHomeWin
	}
	if p.DrawProbability >= p.AwayWinProbability {
		return OutcomeDraw
	}
	return OutcomeAwayWin
}
