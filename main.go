package main

import (
	"log"

	"github.com/pratikg-29/footstats/config"
	_ "github.com/pratikg-29/footstats/docs"
	"github.com/pratikg-29/footstats/internal/match"
	"github.com/pratikg-29/footstats/internal/player"
	"github.com/pratikg-29/footstats/internal/prediction"
	"github.com/pratikg-29/footstats/internal/team"
	"github.com/pratikg-29/footstats/internal/user"
	"github.com/pratikg-29/footstats/routes"
)

// @title FootStats REST API
// @version 1.0
// @description Football statistics, leaderboards and match outcome predictions.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&team.Team{}, &player.Player{},
		&match.Match{}, &prediction.Prediction{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
