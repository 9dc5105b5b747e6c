package match

import (
	"time"

	"github.com/pratikg-29/footstats/internal/team"
	"gorm.io/gorm"
)

// MatchStatus is the closed lifecycle set for a fixture.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
	StatusPostponed MatchStatus = "postponed"
)

// IsValid reports whether s is a member of the status enumeration.
func (s MatchStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusCompleted, StatusPostponed:
		return true
	}
	return false
}

// Match represents a fixture between two distinct teams. Scores are only
// populated once the match is completed. A match conceptually owns its
// prediction: deleting the match cascades to the prediction row.
type Match struct {
	gorm.Model
	HomeTeamID uint       `json:"home_team_id" gorm:"index;not null"`
	HomeTeam   *team.Team `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID"`
	AwayTeamID uint       `json:"away_team_id" gorm:"index;not null"`
	AwayTeam   *team.Team `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID"`

	ScheduledAt time.Time   `json:"scheduled_at" gorm:"index;not null"`
	Status      MatchStatus `json:"status" gorm:"index;not null;default:'scheduled'"`
	HomeScore   *int        `json:"home_score,omitempty"`
	AwayScore   *int        `json:"away_score,omitempty"`
	League      string      `json:"league" gorm:"index;not null"`
	Season      string      `json:"season" gorm:"index"`
}

// LeagueName reports the league the match belongs to, for the league filter.
func (m Match) LeagueName() string {
	return m.League
}

// HomeTeamName resolves the joined home team name, empty when not preloaded.
func (m Match) HomeTeamName() string {
	if m.HomeTeam == nil {
		return ""
	}
	return m.HomeTeam.Name
}

// AwayTeamName resolves the joined away team name, empty when not preloaded.
func (m Match) AwayTeamName() string {
	if m.AwayTeam == nil {
		return ""
	}
	return m.AwayTeam.Name
}
