package main

import (
	"log"

	"nutriplan-backend/config"
	"nutriplan-backend/repository"
	"nutriplan-backend/routes"
	"nutriplan-backend/services"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	store := repository.NewAccountRepository(db)
	authSvc := services.NewAuthService(store, cfg)
	nutritionSvc := services.NewNutritionService()

	r := routes.SetupRouter(cfg, authSvc, nutritionSvc)
	log.Fatal(r.Run(":" + cfg.Port))
}
