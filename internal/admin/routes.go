package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/media2net-app/toptiermen-sub008/internal/service"
)

// SetupRoutes wires the back-office REST surface: nutrient catalog, plan
// templates, categories, members and the scaling audit trail.
func SetupRoutes(r *gin.Engine,
	adminKey string,
	catalogService *service.CatalogService,
	planService *service.PlanService,
	categoryService *service.CategoryService,
	userService *service.UserService,
	eventService *service.ScaleEventService,
) {
	adminGroup := r.Group("/admin", AuthMiddleware(adminKey))

	// Nutrient catalog
	adminGroup.GET("/ingredients", func(c *gin.Context) {
		ingredients, err := catalogService.ListIngredients()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ingredients)
	})

	adminGroup.POST("/ingredients", func(c *gin.Context) {
		var input service.CreateIngredientDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ingredient, err := catalogService.CreateIngredient(input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
			return
		}
		c.JSON(http.StatusCreated, ingredient)
	})

	adminGroup.PUT("/ingredients/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		var input service.UpdateIngredientDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := catalogService.UpdateIngredient(id, input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	adminGroup.DELETE("/ingredients/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		if err := catalogService.DeleteIngredient(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete ingredient"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Plan templates
	adminGroup.GET("/plans", func(c *gin.Context) {
		plans, err := planService.ListPlans()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, plans)
	})

	adminGroup.POST("/plans", func(c *gin.Context) {
		var input service.CreatePlanDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		plan, err := planService.CreatePlan(input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
			return
		}
		c.JSON(http.StatusCreated, plan)
	})

	adminGroup.PUT("/plans/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		var input service.UpdatePlanDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := planService.UpdatePlan(id, input); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	adminGroup.POST("/plans/:id/activate", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		if err := planService.ActivatePlan(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate plan"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	adminGroup.DELETE("/plans/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		if err := planService.DeletePlan(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plan"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Categories
	adminGroup.GET("/categories", func(c *gin.Context) {
		cats, err := categoryService.ListCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cats)
	})

	adminGroup.POST("/categories", func(c *gin.Context) {
		var input service.CreateCategoryDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category, err := categoryService.CreateCategory(input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	})

	// Members
	adminGroup.GET("/users", func(c *gin.Context) {
		users, err := userService.GetAllUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	})

	// Scaling audit trail
	adminGroup.GET("/scale-events/count", func(c *gin.Context) {
		count, err := eventService.GetTotalCount()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	})

	adminGroup.GET("/users/:id/scale-events", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		events, err := eventService.GetUserEvents(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, events)
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, err
	}
	return uint(id), nil
}
