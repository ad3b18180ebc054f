package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joho/godotenv"
	"github.com/media2net-app/toptiermen-sub008/internal/admin"
	"github.com/media2net-app/toptiermen-sub008/internal/database"
	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
	"github.com/media2net-app/toptiermen-sub008/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		log.Fatal("ADMIN_KEY not set")
	}

	// Database
	db, err := database.NewPostgres(dsn)
	if err != nil {
		log.Fatal(err)
	}

	// Migrations
	if err := database.AutoMigrateTables(db,
		&models.Category{},
		&models.Ingredient{},
		&models.MealPlan{},
		&models.User{},
		&models.UserProfile{},
		&models.ScaleEvent{},
	); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	// Repositories
	ingredientRepo := repository.NewIngredientRepo(db)
	planRepo := repository.NewPlanRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	eventRepo := repository.NewScaleEventRepo(db)

	// Services
	catalogService := service.NewCatalogService(ingredientRepo)
	planService := service.NewPlanService(planRepo, profileRepo, eventRepo, catalogService)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo, profileRepo)
	eventService := service.NewScaleEventService(eventRepo)

	// Gin router
	router := gin.Default()

	admin.SetupRoutes(router, adminKey, catalogService, planService, categoryService, userService, eventService)

	addr := os.Getenv("ADMIN_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	log.Println("Admin panel starting on " + addr)
	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to run admin panel:", err)
	}
}
