package prediction

import "fmt"

// InvalidPairError means a forecast was requested for a team against itself.
type InvalidPairError struct {
	TeamID uint
}

func (e *InvalidPairError) Error() string {
	return fmt.Sprintf("invalid team pair: team %d cannot play against itself", e.TeamID)
}

// DuplicatePredictionError means the match already has an outstanding
// prediction. The uniqueness invariant allows at most one per match.
type DuplicatePredictionError struct {
	MatchID uint
}

func (e *DuplicatePredictionError) Error() string {
	return fmt.Sprintf("a prediction already exists for match %d", e.MatchID)
}
