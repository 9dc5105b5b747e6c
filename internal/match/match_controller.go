package match

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/internal/team"
	"github.com/pratikg-29/footstats/pkg/responses"
	"github.com/pratikg-29/footstats/pkg/validator"
)

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo      MatchRepository
	teamRepo  team.TeamRepository
	appConfig *config.Config
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, teamRepo team.TeamRepository, appConfig *config.Config) *MatchController {
	return &MatchController{
		repo:      repo,
		teamRepo:  teamRepo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreateMatchRequest struct {
	HomeTeamID  uint      `json:"home_team_id" binding:"required"`
	AwayTeamID  uint      `json:"away_team_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	League      string    `json:"league" binding:"required,max=100"`
	Season      string    `json:"season" binding:"max=20"`
}

type UpdateMatchRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=scheduled live completed postponed"`
	HomeScore   *int       `json:"home_score" binding:"omitempty,gte=0"`
	AwayScore   *int       `json:"away_score" binding:"omitempty,gte=0"`
}

// CreateMatch godoc
// @Summary Schedule a match
// @Description Creates a fixture between two distinct teams.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match payload"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if req.HomeTeamID == req.AwayTeamID {
		responses.SendError(c, http.StatusBadRequest, "Home and away teams must be different")
		return
	}

	for _, id := range []uint{req.HomeTeamID, req.AwayTeamID} {
		t, err := mc.teamRepo.GetTeamByID(id)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to verify team")
			return
		}
		if t == nil {
			responses.SendError(c, http.StatusBadRequest, "Unknown team: "+strconv.FormatUint(uint64(id), 10))
			return
		}
	}

	m := Match{
		HomeTeamID:  req.HomeTeamID,
		AwayTeamID:  req.AwayTeamID,
		ScheduledAt: req.ScheduledAt,
		Status:      StatusScheduled,
		League:      req.League,
		Season:      req.Season,
	}
	if err := mc.repo.CreateMatch(&m); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match scheduled successfully", m)
}

// GetAllMatches godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param league query string false "League filter"
// @Param season query string false "Season filter"
// @Param status query string false "Status filter" Enums(scheduled, live, completed, postponed)
// @Param team_id query int false "Only matches involving this team"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /matches [get]
func (mc *MatchController) GetAllMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filters := make(map[string]interface{})
	if league := c.Query("league"); league != "" && league != "all" {
		filters["league"] = league
	}
	if season := c.Query("season"); season != "" {
		filters["season"] = season
	}
	if status := c.Query("status"); status != "" {
		if !MatchStatus(status).IsValid() {
			responses.SendError(c, http.StatusBadRequest, "Unknown match status: "+status)
			return
		}
		filters["status"] = status
	}
	if teamID := c.Query("team_id"); teamID != "" {
		id, err := strconv.ParseUint(teamID, 10, 32)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid team_id")
			return
		}
		filters["team_id"] = uint(id)
	}

	matches, total, err := mc.repo.GetAllMatches(page, limit, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", matches, total, page, limit)
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}
	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// UpdateMatch godoc
// @Summary Update a match
// @Description Updates schedule, status and scores. Scores are accepted only together with (or after) completion.
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches/{match_id} [put]
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found")
		return
	}

	if req.ScheduledAt != nil {
		m.ScheduledAt = *req.ScheduledAt
	}
	if req.Status != nil {
		m.Status = MatchStatus(*req.Status)
	}
	if req.HomeScore != nil {
		m.HomeScore = req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = req.AwayScore
	}

	if (m.HomeScore != nil || m.AwayScore != nil) && m.Status != StatusCompleted {
		responses.SendError(c, http.StatusBadRequest, "Scores can only be recorded on completed matches")
		return
	}

	if err := mc.repo.UpdateMatch(m); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Description Deletes a match together with its prediction, if any.
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id} [delete]
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid match ID")
		return
	}

	m, err := mc.repo.GetMatchByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch match")
		return
	}
	if m == nil {
		responses.SendError(c, http.StatusNotFound, "Match not found")
		return
	}

	if err := mc.repo.DeleteMatch(m.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}
