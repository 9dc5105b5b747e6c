package team

import (
	"github.com/pratikg-29/footstats/config"
	mw "github.com/pratikg-29/footstats/internal/middleware"
	"github.com/pratikg-29/footstats/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo, appConfig)

	// Public team routes
	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/leagues", teamController.GetLeagues)
	router.GET("/teams/:team_id", teamController.GetTeamByID)

	// Team management - Admin only
	adminTeams := router.Group("/teams")
	adminTeams.Use(mw.AuthMiddleware(jwtSecret, db))
	adminTeams.Use(rmiddleware.RoleMiddleware("admin"))
	{
		adminTeams.POST("", teamController.CreateTeam)
		adminTeams.PUT("/:team_id", teamController.UpdateTeam)
		adminTeams.DELETE("/:team_id", teamController.DeleteTeam)
	}
}
