package player

import (
	"errors"

	"gorm.io/gorm"
)

// PlayerRepository defines the interface for player data operations
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers(page, limit int, filters map[string]interface{}) ([]Player, int64, error)
	// GetSnapshot loads every player with the team join resolved, for the
	// aggregation engine. Optionally restricted to one league.
	GetSnapshot(league string) ([]Player, error)
	UpdatePlayer(player *Player) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.Preload("Team").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetAllPlayers(page, limit int, filters map[string]interface{}) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{}).Preload("Team")

	if teamID, ok := filters["team_id"]; ok {
		query = query.Where("team_id = ?", teamID)
	}
	if position, ok := filters["position"]; ok {
		query = query.Where("position = ?", position)
	}
	if name, ok := filters["name"]; ok {
		query = query.Where("name ILIKE ?", "%"+name.(string)+"%")
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) GetSnapshot(league string) ([]Player, error) {
	var players []Player
	query := r.db.Model(&Player{}).Preload("Team")
	if league != "" && league != "all" {
		query = query.Joins("JOIN teams ON teams.id = players.team_id").
			Where("teams.league = ?", league)
	}
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) UpdatePlayer(player *Player) error {
	return r.db.Save(player).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
