package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pratikg-29/footstats/config"
	"github.com/pratikg-29/footstats/internal/auth"
	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/internal/player"
	"github.com/pratikg-29/footstats/internal/prediction"
	"github.com/pratikg-29/footstats/internal/stats"
	"github.com/pratikg-29/footstats/internal/team"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	cfg := config.GetConfig()
	db := config.DB
	jwtSecret := cfg.JWT.AccessTokenSecret

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")

	authGroup := api.Group("/auth")
	auth.RegisterAuthRoutes(authGroup, db, cfg)

	team.TeamRoutes(api, db, cfg, jwtSecret)
	player.PlayerRoutes(api, db, cfg, jwtSecret)
	match.MatchRoutes(api, db, cfg, jwtSecret)
	stats.StatsRoutes(api, db, cfg)
	prediction.PredictionRoutes(api, db, cfg, jwtSecret)

	return r
}
