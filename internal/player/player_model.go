// player/model.go
package player

import (
	"github.com/pratikg-29/footstats/internal/team"
	"gorm.io/gorm"
)

// Position is the closed set of playing positions. Anything outside the set is
// bucketed under "Unknown" by the aggregation layer, never dropped.
type Position string

const (
	PositionForward    Position = "Forward"
	PositionMidfielder Position = "Midfielder"
	PositionDefender   Position = "Defender"
	PositionGoalkeeper Position = "Goalkeeper"
	PositionUnknown    Position = "Unknown"
)

// KnownPositions lists every recognized position, excluding the Unknown bucket.
var KnownPositions = []Position{
	PositionForward,
	PositionMidfielder,
	PositionDefender,
	PositionGoalkeeper,
}

// IsKnown reports whether p is a member of the fixed position enumeration.
func (p Position) IsKnown() bool {
	switch p {
	case PositionForward, PositionMidfielder, PositionDefender, PositionGoalkeeper:
		return true
	}
	return false
}

// Player represents a footballer. The team reference is weak: a player may
// exist with no team, and losing the team nulls the reference rather than
// removing the player. Counters are updated externally and only read here.
type Player struct {
	gorm.Model
	Name          string     `json:"name" gorm:"not null;index"`
	TeamID        *uint      `json:"team_id,omitempty" gorm:"index"`
	Team          *team.Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Position      Position   `json:"position" gorm:"index"`
	Goals         int        `json:"goals" gorm:"default:0"`
	Assists       int        `json:"assists" gorm:"default:0"`
	MatchesPlayed int        `json:"matches_played" gorm:"default:0"`
	YellowCards   int        `json:"yellow_cards" gorm:"default:0"`
	RedCards      int        `json:"red_cards" gorm:"default:0"`
	MarketValue   *float64   `json:"market_value,omitempty"`
}

// TeamName resolves the joined team name, empty when the player has no team.
func (p Player) TeamName() string {
	if p.Team == nil {
		return ""
	}
	return p.Team.Name
}
