package routes

import (
	"nutriplan-backend/config"
	"nutriplan-backend/controllers"
	"nutriplan-backend/middlewares"
	"nutriplan-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg config.Config, authSvc *services.AuthService, nutritionSvc *services.NutritionService) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(authSvc)
	nutritionCtl := controllers.NewNutritionController(nutritionSvc)

	r.GET("/health", controllers.Health)

	// Public auth routes, rate limited per client IP
	auth := r.Group("/auth")
	auth.Use(middlewares.AuthRateLimit(cfg.AuthRateRPS, cfg.AuthRateBurst))
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
	}

	// Stateless nutrition computation
	nutrition := r.Group("/nutrition")
	{
		nutrition.POST("/calculate", nutritionCtl.Calculate)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware(authSvc))
	{
		user.GET("/profile", userCtl.GetProfile)
	}

	return r
}
