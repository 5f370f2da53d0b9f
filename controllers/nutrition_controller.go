package controllers

import (
	"errors"
	"net/http"

	"nutriplan-backend/models"
	"nutriplan-backend/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

// Calculate computes metrics for a submitted profile. Stateless, so it needs
// no authentication: the same input always yields the same output.
func (nc *NutritionController) Calculate(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	metrics, err := nc.nutrition.Compute(profile)
	if err != nil {
		if errors.Is(err, services.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
