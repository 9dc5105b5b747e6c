package team

import (
	"errors"

	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data operations
type TeamRepository interface {
	CreateTeam(team *Team) error
	GetTeamByID(id uint) (*Team, error)
	GetTeamByName(name string) (*Team, error)
	GetAllTeams(page, limit int, league string) ([]Team, int64, error)
	GetLeagues() ([]string, error)
	UpdateTeam(team *Team) error
	DeleteTeam(id uint) error
	// IsReferencedByMatch reports whether any match uses the team as home or
	// away side. Teams with match history are immutable.
	IsReferencedByMatch(id uint) (bool, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) GetTeamByID(id uint) (*Team, error) {
	var team Team
	if err := r.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetTeamByName(name string) (*Team, error) {
	var team Team
	if err := r.db.Where("name = ?", name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetAllTeams(page, limit int, league string) ([]Team, int64, error) {
	var teams []Team
	var total int64

	query := r.db.Model(&Team{})
	if league != "" && league != "all" {
		query = query.Where("league = ?", league)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, total, nil
}

func (r *teamRepository) GetLeagues() ([]string, error) {
	var leagues []string
	if err := r.db.Model(&Team{}).Distinct("league").Order("league asc").Pluck("league", &leagues).Error; err != nil {
		return nil, err
	}
	return leagues, nil
}

func (r *teamRepository) UpdateTeam(team *Team) error {
	return r.db.Save(team).Error
}

func (r *teamRepository) DeleteTeam(id uint) error {
	return r.db.Delete(&Team{}, id).Error
}

func (r *teamRepository) IsReferencedByMatch(id uint) (bool, error) {
	var count int64
	err := r.db.Table("matches").
		Where("(home_team_id = ? OR away_team_id = ?) AND deleted_at IS NULL", id, id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
