package main

import (
	"github.com/cppla/miniblog/config"
	"github.com/cppla/miniblog/models"
	"github.com/cppla/miniblog/routes"
	"github.com/cppla/miniblog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// Create the schema on first boot
	db := config.InitDatabase(&models.User{}, &models.Profile{}, &models.Post{}, &models.Comment{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
