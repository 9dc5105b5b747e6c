package stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/internal/player"
	"github.com/pratikg-29/footstats/pkg/responses"
)

// StatsController serves the aggregate endpoints. It pulls snapshots through
// the player and match repositories and runs the pure aggregation functions
// over them.
type StatsController struct {
	playerRepo player.PlayerRepository
	matchRepo  match.MatchRepository
	appConfig  *config.Config
}

// NewStatsController creates a new stats controller
func NewStatsController(playerRepo player.PlayerRepository, matchRepo match.MatchRepository, appConfig *config.Config) *StatsController {
	return &StatsController{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		appConfig:  appConfig,
	}
}

// GetLeaderboard godoc
// @Summary Player leaderboard
// @Description Players ranked by a counter metric, ties broken alphabetically.
// @Tags Stats
// @Produce json
// @Param metric query string false "Ranking metric" Enums(goals, assists, matches_played) default(goals)
// @Param limit query int false "Max entries" default(10)
// @Param league query string false "League filter, 'all' for every league"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /players/leaderboard [get]
func (sc *StatsController) GetLeaderboard(c *gin.Context) {
	metric := Metric(c.DefaultQuery("metric", string(MetricGoals)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	league := c.DefaultQuery("league", LeagueAll)

	snapshot, err := sc.playerRepo.GetSnapshot(league)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load player snapshot")
		return
	}

	entries, err := RankByMetric(snapshot, metric, limit, nil)
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) {
			responses.SendError(c, http.StatusBadRequest, malformed.Error())
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to build leaderboard")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"metric":  metric,
		"entries": entries,
	})
}

// GetPositionDistribution godoc
// @Summary Players per position
// @Description Counts players for each position; unrecognized positions land in the Unknown bucket.
// @Tags Stats
// @Produce json
// @Param league query string false "League filter, 'all' for every league"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/positions [get]
func (sc *StatsController) GetPositionDistribution(c *gin.Context) {
	league := c.DefaultQuery("league", LeagueAll)

	snapshot, err := sc.playerRepo.GetSnapshot(league)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load player snapshot")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", PositionDistribution(snapshot))
}

// GetPerformanceIndex godoc
// @Summary Combined goals+assists ranking
// @Tags Stats
// @Produce json
// @Param limit query int false "Max entries" default(10)
// @Param league query string false "League filter, 'all' for every league"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/performance [get]
func (sc *StatsController) GetPerformanceIndex(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	league := c.DefaultQuery("league", LeagueAll)

	snapshot, err := sc.playerRepo.GetSnapshot(league)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load player snapshot")
		return
	}

	entries, err := PerformanceIndex(snapshot, limit)
	if err != nil {
		var malformed *MalformedInputError
		if errors.As(err, &malformed) {
			responses.SendError(c, http.StatusBadRequest, malformed.Error())
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to build performance index")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"entries": entries})
}

// GetMatchSummary godoc
// @Summary Goal summary over completed matches
// @Description Total and average goals across completed matches, optionally one league.
// @Tags Stats
// @Produce json
// @Param league query string false "League filter, 'all' for every league"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/summary [get]
func (sc *StatsController) GetMatchSummary(c *gin.Context) {
	league := c.DefaultQuery("league", LeagueAll)

	snapshot, err := sc.matchRepo.GetSnapshot(league)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to load match snapshot")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", MatchSummary(snapshot))
}
