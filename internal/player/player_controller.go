package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/pkg/responses"
	"github.com/pratikg-29/footstats/pkg/validator"
)

// PlayerController handles player-related HTTP requests
type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreatePlayerRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	TeamID      *uint    `json:"team_id"`
	Position    string   `json:"position" binding:"omitempty,oneof=Forward Midfielder Defender Goalkeeper"`
	MarketValue *float64 `json:"market_value" binding:"omitempty,gte=0"`
}

type UpdatePlayerRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=100"`
	TeamID        *uint    `json:"team_id"`
	Position      *string  `json:"position" binding:"omitempty,oneof=Forward Midfielder Defender Goalkeeper"`
	Goals         *int     `json:"goals" binding:"omitempty,gte=0"`
	Assists       *int     `json:"assists" binding:"omitempty,gte=0"`
	MatchesPlayed *int     `json:"matches_played" binding:"omitempty,gte=0"`
	YellowCards   *int     `json:"yellow_cards" binding:"omitempty,gte=0"`
	RedCards      *int     `json:"red_cards" binding:"omitempty,gte=0"`
	MarketValue   *float64 `json:"market_value" binding:"omitempty,gte=0"`
}

// CreatePlayer godoc
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player payload"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	p := Player{
		Name:        req.Name,
		TeamID:      req.TeamID,
		Position:    Position(req.Position),
		MarketValue: req.MarketValue,
	}
	if err := pc.repo.CreatePlayer(&p); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// GetAllPlayers godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Param team_id query int false "Team filter"
// @Param position query string false "Position filter" Enums(Forward, Midfielder, Defender, Goalkeeper)
// @Param name query string false "Name search"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filters := make(map[string]interface{})
	if teamID := c.Query("team_id"); teamID != "" {
		id, err := strconv.ParseUint(teamID, 10, 32)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid team_id")
			return
		}
		filters["team_id"] = uint(id)
	}
	if position := c.Query("position"); position != "" {
		filters["position"] = position
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	players, total, err := pc.repo.GetAllPlayers(page, limit, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch players")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", players, total, page, limit)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Description Updates player fields, including externally maintained counters.
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.TeamID != nil {
		p.TeamID = req.TeamID
	}
	if req.Position != nil {
		p.Position = Position(*req.Position)
	}
	if req.Goals != nil {
		p.Goals = *req.Goals
	}
	if req.Assists != nil {
		p.Assists = *req.Assists
	}
	if req.MatchesPlayed != nil {
		p.MatchesPlayed = *req.MatchesPlayed
	}
	if req.YellowCards != nil {
		p.YellowCards = *req.YellowCards
	}
	if req.RedCards != nil {
		p.RedCards = *req.RedCards
	}
	if req.MarketValue != nil {
		p.MarketValue = req.MarketValue
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid player ID")
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.SendError(c, http.StatusNotFound, "Player not found")
		return
	}

	if err := pc.repo.DeletePlayer(p.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}
