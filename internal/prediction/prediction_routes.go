package prediction

import (
	"github.com/pratikg-29/footstats/config"
	mw "github.com/pratikg-29/footstats/internal/middleware"
	"github.com/pratikg-29/footstats/internal/match"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PredictionRoutes sets up all prediction-related routes
func PredictionRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	predictionRepo := NewPredictionRepository(db)
	matchRepo := match.NewMatchRepository(db)
	predictionController := NewPredictionController(predictionRepo, matchRepo, appConfig)

	// Public prediction routes
	router.GET("/predictions", predictionController.GetAllPredictions)
	router.GET("/matches/:match_id/predictions", predictionController.GetPredictionForMatch)

	// Generating a prediction requires a signed-in user
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/matches/:match_id/predictions", predictionController.GeneratePrediction)
	}
}
