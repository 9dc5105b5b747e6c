package team

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/pkg/responses"
	"github.com/pratikg-29/footstats/pkg/validator"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo      TeamRepository
	appConfig *config.Config
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	League      string `json:"league" binding:"required,max=100"`
	FoundedYear *int   `json:"founded_year" binding:"omitempty,gte=1800,lte=2100"`
	Stadium     string `json:"stadium" binding:"max=150"`
	Coach       string `json:"coach" binding:"max=100"`
}

type UpdateTeamRequest struct {
	League      *string `json:"league" binding:"omitempty,max=100"`
	FoundedYear *int    `json:"founded_year" binding:"omitempty,gte=1800,lte=2100"`
	Stadium     *string `json:"stadium" binding:"omitempty,max=150"`
	Coach       *string `json:"coach" binding:"omitempty,max=100"`
}

// CreateTeam godoc
// @Summary Create a new team
// @Description Registers a new club. Team names are unique across leagues.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team payload"
// @Success 201 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	existing, err := tc.repo.GetTeamByName(req.Name)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check team name")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "A team with this name already exists")
		return
	}

	team := Team{
		Name:        req.Name,
		League:      req.League,
		FoundedYear: req.FoundedYear,
		Stadium:     req.Stadium,
		Coach:       req.Coach,
	}
	if err := tc.repo.CreateTeam(&team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetAllTeams godoc
// @Summary List teams
// @Description Lists teams, optionally filtered by league. Pass league=all (or omit) for every league.
// @Tags Teams
// @Produce json
// @Param league query string false "League filter, 'all' for no filter"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	league := c.DefaultQuery("league", "all")

	teams, total, err := tc.repo.GetAllTeams(page, limit, league)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch teams")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", teams, total, page, limit)
}

// GetTeamByID godoc
// @Summary Get a team
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}
	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", team)
}

// GetLeagues godoc
// @Summary List leagues
// @Description Distinct league labels across all registered teams.
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /teams/leagues [get]
func (tc *TeamController) GetLeagues(c *gin.Context) {
	leagues, err := tc.repo.GetLeagues()
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch leagues")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"leagues": leagues})
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Updates descriptive fields. Rejected once the team is referenced by a match.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	referenced, err := tc.repo.IsReferencedByMatch(team.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check team references")
		return
	}
	if referenced {
		responses.SendError(c, http.StatusConflict, "Team is referenced by matches and cannot be modified")
		return
	}

	if req.League != nil {
		team.League = *req.League
	}
	if req.FoundedYear != nil {
		team.FoundedYear = req.FoundedYear
	}
	if req.Stadium != nil {
		team.Stadium = *req.Stadium
	}
	if req.Coach != nil {
		team.Coach = *req.Coach
	}

	if err := tc.repo.UpdateTeam(team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Deletes a team that no match references.
// @Tags Teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, err := tc.repo.GetTeamByID(uint(id))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	if team == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	referenced, err := tc.repo.IsReferencedByMatch(team.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to check team references")
		return
	}
	if referenced {
		responses.SendError(c, http.StatusConflict, "Team is referenced by matches and cannot be deleted")
		return
	}

	if err := tc.repo.DeleteTeam(team.ID); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}
