package auth

import (
	"github.com/pratikg-29/footstats/config"
	mw "github.com/pratikg-29/footstats/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes sets up registration and login routes
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authRepo := NewAuthRepository(db)
	authController := NewAuthController(authRepo, cfg)

	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	protected := router.Group("/")
	protected.Use(mw.AuthMiddleware(cfg.JWT.AccessTokenSecret, db))
	{
		protected.GET("/me", authController.GetProfile)
	}
}
