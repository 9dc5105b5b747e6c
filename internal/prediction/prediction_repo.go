package prediction

import (
	"errors"

	"gorm.io/gorm"
)

// PredictionRepository defines the interface for prediction data operations
type PredictionRepository interface {
	Store
	// CreatePrediction inserts the row. The unique index on match_id makes
	// the insert the authoritative uniqueness check: a concurrent request
	// that won the race surfaces here as *DuplicatePredictionError.
	CreatePrediction(p *Prediction) error
	GetByMatchID(matchID uint) (*Prediction, error)
	GetAllPredictions(page, limit int) ([]Prediction, int64, error)
}

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new instance of PredictionRepository
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) ExistsForMatch(matchID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Prediction{}).Where("match_id = ?", matchID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *predictionRepository) CreatePrediction(p *Prediction) error {
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicatePredictionError{MatchID: p.MatchID}
		}
		return err
	}
	return nil
}

func (r *predictionRepository) GetByMatchID(matchID uint) (*Prediction, error) {
	var p Prediction
	err := r.db.Preload("Match").Preload("Match.HomeTeam").Preload("Match.AwayTeam").
		Where("match_id = ?", matchID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *predictionRepository) GetAllPredictions(page, limit int) ([]Prediction, int64, error) {
	var predictions []Prediction
	var total int64

	query := r.db.Model(&Prediction{})
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Preload("Match").Preload("Match.HomeTeam").Preload("Match.AwayTeam").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&predictions).Error
	if err != nil {
		return nil, 0, err
	}
	return predictions, total, nil
}
