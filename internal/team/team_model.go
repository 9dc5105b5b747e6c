// team/model.go
package team

import (
	"gorm.io/gorm"
)

// Team represents a football club. Teams are treated as immutable once a
// match references them, so descriptive fields are fixed at creation time.
type Team struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	League      string `json:"league" gorm:"index;not null"`
	FoundedYear *int   `json:"founded_year,omitempty"`
	Stadium     string `json:"stadium,omitempty"`
	Coach       string `json:"coach,omitempty"`
}

// LeagueName reports the league the team plays in. Satisfies stats.LeagueScoped
// so teams can go through the shared league filter.
func (t Team) LeagueName() string {
	return t.League
}
