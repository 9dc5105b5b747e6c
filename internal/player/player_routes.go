package player

import (
	"github.com/pratikg-29/footstats/config"
	mw "github.com/pratikg-29/footstats/internal/middleware"
	"github.com/pratikg-29/footstats/pkg/rmiddleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerRoutes sets up all player-related routes
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, appConfig)

	// Public player routes; the aggregate endpoints live in the stats package
	router.GET("/players", playerController.GetAllPlayers)
	router.GET("/players/:player_id", playerController.GetPlayerByID)

	// Player management - Admin only
	adminPlayers := router.Group("/players")
	adminPlayers.Use(mw.AuthMiddleware(jwtSecret, db))
	adminPlayers.Use(rmiddleware.RoleMiddleware("admin"))
	{
		adminPlayers.POST("", playerController.CreatePlayer)
		adminPlayers.PUT("/:player_id", playerController.UpdatePlayer)
		adminPlayers.DELETE("/:player_id", playerController.DeletePlayer)
	}
}
