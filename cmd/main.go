package main

import (
	"context"

	"github.com/aandreu7/iNutriScan/config"
	"github.com/aandreu7/iNutriScan/controllers"
	"github.com/aandreu7/iNutriScan/routes"
	"github.com/aandreu7/iNutriScan/services"
	"github.com/aandreu7/iNutriScan/utils"
)

func main() {
	logger := utils.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalw("loading config failed", "error", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalw("resolving timezone failed", "error", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalw("database init failed", "error", err)
	}

	// External clients are built once and shared across requests.
	ctx := context.Background()
	gemini, err := services.NewGeminiService(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatalw("gemini init failed", "error", err)
	}
	tts, err := services.NewTTSService(ctx)
	if err != nil {
		logger.Fatalw("text-to-speech init failed", "error", err)
	}
	visionSvc, err := services.NewVisionService(ctx)
	if err != nil {
		logger.Fatalw("vision init failed", "error", err)
	}

	buckets := services.NewBucketService(db, loc, logger)
	users := services.NewUserService(db)
	transcriber := services.NewTranscriptionService(cfg.AssemblyAIKey)
	fitness := services.NewFitnessService(loc)
	usda := services.NewUSDAService(cfg.USDAAPIKey)
	spoonacular := services.NewSpoonacularService(cfg.SpoonacularKey)

	r := routes.SetupRouter(routes.Controllers{
		Activity:    controllers.NewActivityController(fitness, transcriber, gemini, buckets, users, logger),
		Food:        controllers.NewFoodController(gemini, visionSvc, logger),
		Nutrition:   controllers.NewNutritionController(gemini, usda, buckets, logger),
		Recipe:      controllers.NewRecipeController(gemini, spoonacular, logger),
		Speech:      controllers.NewSpeechController(tts, logger),
		Balance:     controllers.NewBalanceController(buckets, users),
		Maintenance: controllers.NewMaintenanceController(buckets, logger),
	})

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
