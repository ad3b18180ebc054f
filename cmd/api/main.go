package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/media2net-app/toptiermen-sub008/internal/api"
	"github.com/media2net-app/toptiermen-sub008/internal/database"
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
	"github.com/media2net-app/toptiermen-sub008/internal/service"
	"github.com/media2net-app/toptiermen-sub008/pkg/utils"
)

func main() {
	// -----------------------
	// ENV
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		utils.Log.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	// -----------------------
	// DATABASE
	db, err := database.NewPostgres(dsn)
	if err != nil {
		utils.Log.Error("Failed to connect to database: " + err.Error())
		os.Exit(1)
	}
	utils.Log.Info("Database connected")

	if err := database.AutoMigrateTables(db,
		&models.Category{},
		&models.Ingredient{},
		&models.MealPlan{},
		&models.User{},
		&models.UserProfile{},
		&models.ScaleEvent{},
	); err != nil {
		utils.Log.Error("Failed to migrate database: " + err.Error())
		os.Exit(1)
	}

	// -----------------------
	// REPOSITORIES
	ingredientRepo := repository.NewIngredientRepo(db)
	planRepo := repository.NewPlanRepo(db)
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	eventRepo := repository.NewScaleEventRepo(db)

	// -----------------------
	// SERVICES
	catalogService := service.NewCatalogService(ingredientRepo)
	planService := service.NewPlanService(planRepo, profileRepo, eventRepo, catalogService)
	userService := service.NewUserService(userRepo, profileRepo)
	eventService := service.NewScaleEventService(eventRepo)

	// -----------------------
	// API
	router := gin.Default()
	api.SetupRoutes(router, planService, userService, eventService)

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	utils.Log.Info("Member API starting on " + addr)
	if err := router.Run(addr); err != nil {
		utils.Log.Error("Failed to run API: " + err.Error())
		os.Exit(1)
	}
}
