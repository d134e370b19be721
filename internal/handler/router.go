package handler

import (
	"net/http"

	"beltdash/backend/internal/auth"
	"beltdash/backend/internal/middleware"
	"beltdash/backend/internal/service"
	jwtpkg "beltdash/backend/pkg/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter wires every endpoint with its authorization policy.
func NewRouter(db *gorm.DB, tokens *jwtpkg.Issuer) *gin.Engine {
	authHandler := NewAuthHandler(service.NewAuthService(db, tokens))
	userHandler := NewUserHandler(service.NewUserService(db), service.NewScoreService(db))
	scoreHandler := NewScoreHandler(service.NewScoreService(db))
	roleHandler := NewRoleHandler(service.NewRoleService(db))

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.Telemetry())
	router.Use(cors.Default())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes (anonymous)
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// Score routes
		scoreRoutes := apiV1.Group("/scores")
		{
			scoreRoutes.GET("", scoreHandler.GetPaginatedScores)
			scoreRoutes.GET("/top", scoreHandler.GetTopScores)
			scoreRoutes.POST("", auth.AuthMiddleware(tokens), scoreHandler.CreateScore)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware(tokens))
		{
			userRoutes.GET("", auth.AdminMiddleware(), userHandler.GetAllUsers)
			userRoutes.GET("/:id", userHandler.GetUserByID)
			userRoutes.PUT("/:id", auth.SelfOrAdminMiddleware("id"), userHandler.UpdateUser)
			userRoutes.PATCH("/:id/status", auth.AdminMiddleware(), userHandler.UpdateUserStatus)
			userRoutes.PATCH("/:id/role", auth.AdminMiddleware(), userHandler.UpdateUserRole)
			userRoutes.DELETE("/:id", auth.AdminMiddleware(), userHandler.DeleteUser)
			userRoutes.GET("/:id/scores", auth.SelfOrAdminMiddleware("id"), userHandler.GetUserScores)
		}

		// Role routes (admin only)
		roleRoutes := apiV1.Group("/roles")
		roleRoutes.Use(auth.AuthMiddleware(tokens), auth.AdminMiddleware())
		{
			roleRoutes.GET("", roleHandler.GetAllRoles)
		}
	}

	return router
}
