package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Prathamahuja/employee-leave-management/internal/config"
	"github.com/Prathamahuja/employee-leave-management/internal/handlers"
	"github.com/Prathamahuja/employee-leave-management/internal/middleware"
	"github.com/Prathamahuja/employee-leave-management/internal/repositories"
	"github.com/Prathamahuja/employee-leave-management/internal/services"
)

// SessionCookie is the name of the authentication cookie.
const SessionCookie = "leave_session"

// sessionMaxAge is the fixed session lifetime, independent of activity.
const sessionMaxAge = 24 * 60 * 60

// New wires repositories, services and handlers onto a gin engine. The
// session store is injected so tests can run against an in-memory store
// while production uses a signed cookie store.
func New(cfg config.Config, db *gorm.DB, store sessions.Store) *gin.Engine {
	userRepo := repositories.NewUserRepository(db)
	leaveRepo := repositories.NewLeaveRepository(db)

	authService := services.NewAuthService(userRepo)
	leaveService := services.NewLeaveService(leaveRepo)
	adminService := services.NewAdminService(leaveRepo)

	authHandler := handlers.NewAuthHandler(authService)
	leaveHandler := handlers.NewLeaveHandler(leaveService)
	adminHandler := handlers.NewAdminHandler(adminService)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Something went wrong!",
			"error":   fmt.Sprint(recovered),
		})
	}))
	router.Use(middleware.RequestID())

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Production(),
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(SessionCookie, store))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Employee Leave Management System API is running")
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		leaves := api.Group("/leaves")
		leaves.Use(middleware.RequireAuth())
		{
			leaves.POST("", leaveHandler.Create)
			leaves.GET("/my-leaves", leaveHandler.MyLeaves)
			leaves.GET("/:id", leaveHandler.GetOne)
			leaves.PUT("/:id", leaveHandler.Update)
			leaves.DELETE("/:id", leaveHandler.Delete)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/leaves", adminHandler.ListLeaves)
			admin.PUT("/leaves/:id", adminHandler.UpdateLeaveStatus)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Endpoint not found"})
	})

	return router
}
