package routes

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamdash-backend/internal/config"
	"teamdash-backend/internal/handlers"
	"teamdash-backend/internal/middleware"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handlers.NewAuthHandler(db, cfg)
	officeHandler := handlers.NewOfficeHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)
	taskHandler := handlers.NewTaskHandler(db)
	leaveHandler := handlers.NewLeaveHandler(db)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/office-locations", officeHandler.List)
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthRequired(db, cfg.JwtSecret))
	{
		protected.POST("/auth/register", middleware.RequireRole("admin"), authHandler.Register)
		protected.POST("/auth/change-password", authHandler.ChangePassword)
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/users", middleware.RequireRole("admin"), authHandler.ListUsers)

		protected.POST("/office-locations", middleware.RequireRole("admin"), officeHandler.Create)

		protected.POST("/attendance/check-in", attendanceHandler.CheckIn)
		protected.POST("/attendance/check-out", attendanceHandler.CheckOut)
		protected.GET("/attendance/today", attendanceHandler.Today)

		protected.POST("/tasks", taskHandler.Create)
		protected.GET("/tasks", taskHandler.List)
		protected.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
		protected.PATCH("/tasks/:id/time", taskHandler.LogTime)

		protected.POST("/leaves", leaveHandler.Create)
		protected.GET("/leaves", leaveHandler.List)
		protected.GET("/leaves/pending", middleware.RequireRole("admin"), leaveHandler.ListPending)
		protected.PATCH("/leaves/:id/approve", middleware.RequireRole("admin"), leaveHandler.Approve)
		protected.PATCH("/leaves/:id/reject", middleware.RequireRole("admin"), leaveHandler.Reject)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}

	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" && origin != "*" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}

	return cors.New(corsCfg)
}
