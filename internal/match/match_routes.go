package match

import (
	"github.com/pratikg-29/footstats/config"
	mw "github.com/pratikg-29/footstats/internal/middleware"
	"github.com/pratikg-29/footstats/internal/team"
	"github.com/pratikg-29/footstats/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	matchRepo := NewMatchRepository(db)
	teamRepo := team.NewTeamRepository(db)
	matchController := NewMatchController(matchRepo, teamRepo, appConfig)

	// Public match routes; the goal summary lives in the stats package
	router.GET("/matches", matchController.GetAllMatches)
	router.GET("/matches/:match_id", matchController.GetMatchByID)

	// Match management - Admin only
	adminMatches := router.Group("/matches")
	adminMatches.Use(mw.AuthMiddleware(jwtSecret, db))
	adminMatches.Use(rmiddleware.RoleMiddleware("admin"))
	{
		adminMatches.POST("", matchController.CreateMatch)
		adminMatches.PUT("/:match_id", matchController.UpdateMatch)
		adminMatches.DELETE("/:match_id", matchController.DeleteMatch)
	}
}
