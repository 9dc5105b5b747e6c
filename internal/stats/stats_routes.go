package stats

import (
	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/internal/player"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsRoutes sets up the aggregate endpoints. All of them are public reads.
func StatsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	statsController := NewStatsController(player.NewPlayerRepository(db), match.NewMatchRepository(db), appConfig)

	router.GET("/players/leaderboard", statsController.GetLeaderboard)
	router.GET("/players/positions", statsController.GetPositionDistribution)
	router.GET("/players/performance", statsController.GetPerformanceIndex)
	router.GET("/matches/summary", statsController.GetMatchSummary)
}
