package prediction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/pkg/responses"
)

// How much history feeds a team's form summary.
const formWindow = 10

// PredictionController handles prediction-related HTTP requests
type PredictionController struct {
	repo      PredictionRepository
	matchRepo match.MatchRepository
	generator *Generator
	appConfig *config.Config
}

// NewPredictionController creates a new prediction controller
func NewPredictionController(repo PredictionRepository, matchRepo match.MatchRepository, appConfig *config.Config) *PredictionController {
	strategy := StrategyByName(appConfig.Prediction.Strategy)
	return &PredictionController{
		repo:      repo,
		matchRepo: matchRepo,
		generator: NewGenerator(repo, strategy),
		appConfig: appConfig,
	}
}

// GeneratePrediction godoc
// @Summary Generate a prediction for a match
// @Description Synthesizes the outcome forecast for a match. Each match can hold at most one prediction.
// @Tags Predictions
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /matches/{match_id}/predictions [post]
func (pc *PredictionController) GeneratePrediction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := pc.matchRepo.GetMatchByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found")
		return
	}

	homeHistory, err := pc.matchRepo.GetCompletedByTeam(m.HomeTeamID, formWindow)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load home team history")
		return
	}
	awayHistory, err := pc.matchRepo.GetCompletedByTeam(m.AwayTeamID, formWindow)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load away team history")
		return
	}

	home := BuildTeamForm(m.HomeTeamID, m.HomeTeamName(), homeHistory)
	away := BuildTeamForm(m.AwayTeamID, m.AwayTeamName(), awayHistory)

	pred, err := pc.generator.Generate(m.ID, home, away)
	if err != nil {
		pc.sendGenerateError(c, err)
		return
	}

	if err := pc.repo.CreatePrediction(pred); err != nil {
		pc.sendGenerateError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Prediction generated successfully", pred)
}

// sendGenerateError maps the generator's error taxonomy onto HTTP statuses.
func (pc *PredictionController) sendGenerateError(c *gin.Context, err error) {
	var invalidPair *InvalidPairError
	var duplicate *DuplicatePredictionError
	switch {
	case errors.As(err, &invalidPair):
		responses.SendError(c, http.StatusBadRequest, invalidPair.Error())
	case errors.As(err, &duplicate):
		responses.SendError(c, http.StatusConflict, duplicate.Error())
	default:
		responses.SendError(c, http.StatusInternalServerError, "Failed to generate prediction")
	}
}

// GetPredictionForMatch godoc
// @Summary Get the prediction for a match
// @Tags Predictions
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id}/predictions [get]
func (pc *PredictionController) GetPredictionForMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	pred, err := pc.repo.GetByMatchID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch prediction")
		return
	}
	if pred == nil {
		responses.SendError(c, http.StatusNotFound, "No prediction exists for this match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"prediction":        pred,
		"predicted_outcome": pred.PredictedOutcome(),
	})
}

// GetAllPredictions godoc
// @Summary List predictions
// @Tags Predictions
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /predictions [get]
func (pc *PredictionController) GetAllPredictions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	predictions, total, err := pc.repo.GetAllPredictions(page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch predictions")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", predictions, total, page, limit)
}
