package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/media2net-app/toptiermen-sub008/internal/service"
)

// SetupRoutes wires the member-facing surface: browse active plans, read a
// plan, scale a plan to personal targets, manage the own profile.
func SetupRoutes(r *gin.Engine,
	planService *service.PlanService,
	userService *service.UserService,
	eventService *service.ScaleEventService,
) {
	v1 := r.Group("/api/v1", RequestIDMiddleware())

	v1.GET("/plans", func(c *gin.Context) {
		plans, err := planService.ListActivePlans()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, plans)
	})

	v1.GET("/plans/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		plan, err := planService.GetPlanByID(id)
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, plan)
	})

	// The scaling endpoint. Only an absent plan fails the request; missing
	// nutrient data and degenerate targets come back as report fields on a
	// 200 so the member still gets usable guidance.
	v1.POST("/plans/:id/scale", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		var input service.ScaleRequestDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := planService.ScaleForUser(id, input, RequestID(c))
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	})

	v1.GET("/users/:id/profile", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		profile, err := userService.GetProfile(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if profile == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	})

	v1.PUT("/users/:id/profile", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			return
		}
		var input service.UpdateProfileDTO
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		profile, err := userService.UpsertProfile(id, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	})

	v1.GET("/users/:id/scale-events", func(c *gin.Context) {
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
