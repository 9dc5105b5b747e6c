package match

import (
	"errors"

	"gorm.io/gorm"
)

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetAllMatches(page, limit int, filters map[string]interface{}) ([]Match, int64, error)
	// GetSnapshot loads matches with team joins resolved, optionally restricted
	// to one league, for the aggregation and prediction layers.
	GetSnapshot(league string) ([]Match, error)
	// GetCompletedByTeam returns completed matches the team took part in,
	// most recent first, capped at limit.
	GetCompletedByTeam(teamID uint, limit int) ([]Match, error)
	UpdateMatch(match *Match) error
	// DeleteMatch removes the match and, in the same transaction, any
	// prediction that references it.
	DeleteMatch(id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(match *Match) error {
	return r.db.Create(match).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.Preload("HomeTeam").Preload("AwayTeam").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetAllMatches(page, limit int, filters map[string]interface{}) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{}).Preload("HomeTeam").Preload("AwayTeam")

	if league, ok := filters["league"]; ok {
		query = query.Where("league = ?", league)
	}
	if season, ok := filters["season"]; ok {
		query = query.Where("season = ?", season)
	}
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("home_team_id = ? OR away_team_id = ?", teamID, teamID)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("scheduled_at desc").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (r *matchRepository) GetSnapshot(league string) ([]Match, error) {
	var matches []Match
	query := r.db.Model(&Match{}).Preload("HomeTeam").Preload("AwayTeam")
	if league != "" && league != "all" {
		query = query.Where("league = ?", league)
	}
	if err := query.Order("scheduled_at asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) GetCompletedByTeam(teamID uint, limit int) ([]Match, error) {
	var matches []Match
	query := r.db.Model(&Match{}).
		Where("status = ?", StatusCompleted).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Order("scheduled_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) UpdateMatch(match *Match) error {
	return r.db.Save(match).Error
}

func (r *matchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Prediction rows live or die with their match.
		if err := tx.Table("predictions").Where("match_id = ?", id).
			Update("deleted_at", tx.NowFunc()).Error; err != nil {
			return err
		}
		return tx.Delete(&Match{}, id).Error
	})
}
