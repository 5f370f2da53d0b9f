package controllers

import (
	"errors"
	"net/http"

	"nutriplan-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

// GetProfile returns the account summary for the authenticated caller.
func (uc *UserController) GetProfile(c *gin.Context) {
	accountID := c.GetString("accountID")

	account, err := uc.auth.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, account)
}
