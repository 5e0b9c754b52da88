package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/samajconnect/portal-backend/config"
	"github.com/samajconnect/portal-backend/database"
	"github.com/samajconnect/portal-backend/internal/auditlog"
	"github.com/samajconnect/portal-backend/internal/auth"
	"github.com/samajconnect/portal-backend/internal/committee"
	"github.com/samajconnect/portal-backend/internal/document"
	"github.com/samajconnect/portal-backend/internal/event"
	"github.com/samajconnect/portal-backend/internal/homeimage"
	"github.com/samajconnect/portal-backend/internal/member"
	"github.com/samajconnect/portal-backend/internal/reports"
	"github.com/samajconnect/portal-backend/internal/scrollingnote"
	"github.com/samajconnect/portal-backend/internal/upload"
	"github.com/samajconnect/portal-backend/internal/useradmin"
	"github.com/samajconnect/portal-backend/middleware"
)

// Setup wires every module against the shared database handle and mounts the
// public and admin route groups.
func Setup(r *gin.Engine, cfg *config.Config) {
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// ========== Module wiring ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	memberRepo := member.NewRepository(database.DB)
	memberSvc := member.NewService(memberRepo, auditSvc)
	memberHandler := member.NewHandler(memberSvc)

	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, memberSvc, cfg)
	authHandler := auth.NewHandler(authSvc)

	homeImageRepo := homeimage.NewRepository(database.DB)
	homeImageSvc := homeimage.NewService(homeImageRepo, auditSvc)
	homeImageHandler := homeimage.NewHandler(homeImageSvc)

	eventRepo := event.NewRepository(database.DB)
	eventSvc := event.NewService(eventRepo, auditSvc)
	eventHandler := event.NewHandler(eventSvc)

	committeeRepo := committee.NewRepository(database.DB)
	committeeSvc := committee.NewService(committeeRepo, auditSvc)
	committeeHandler := committee.NewHandler(committeeSvc)

	documentRepo := document.NewRepository(database.DB)
	documentSvc := document.NewService(documentRepo, auditSvc)
	documentHandler := document.NewHandler(documentSvc)

	noteRepo := scrollingnote.NewRepository(database.DB)
	noteSvc := scrollingnote.NewService(noteRepo, auditSvc)
	noteHandler := scrollingnote.NewHandler(noteSvc)

	uploadSvc := upload.NewService(cfg, auditSvc)
	uploadHandler := upload.NewHandler(uploadSvc)

	userRepo := useradmin.NewRepository(database.DB)
	userSvc := useradmin.NewService(userRepo, memberRepo, eventRepo, committeeRepo, auditSvc)
	userHandler := useradmin.NewHandler(userSvc)

	reportSvc := reports.NewService(memberRepo, reports.NewExporter(), auditSvc)
	reportHandler := reports.NewHandler(reportSvc)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter())

	// ========== Auth ==========
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	// ========== Public content ==========
	api.GET("/members", memberHandler.ListPublic)
	api.GET("/home-images", homeImageHandler.ListPublic)
	api.GET("/events", eventHandler.ListPublic)
	api.GET("/committees", committeeHandler.ListPublic)
	api.GET("/scrolling-note", noteHandler.Get)
	api.GET("/documents/:category", documentHandler.List)

	// ========== Admin ==========
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg, authSvc))
	admin.Use(middleware.RequireRole(auth.RoleAdmin))
	{
		admin.GET("/members", memberHandler.ListAdmin)
		admin.POST("/members", memberHandler.Create)
		admin.PUT("/members/:id", memberHandler.Update)
		admin.DELETE("/members/:id", memberHandler.Delete)

		admin.GET("/home-images", homeImageHandler.ListAdmin)
		admin.POST("/home-images", homeImageHandler.Create)
		admin.PUT("/home-images/:id", homeImageHandler.Update)
		admin.DELETE("/home-images/:id", homeImageHandler.Delete)
		admin.PUT("/home-images/:id/reorder", homeImageHandler.Reorder)

		admin.GET("/events", eventHandler.ListAdmin)
		admin.POST("/events", eventHandler.Create)
		admin.PUT("/events/:id", eventHandler.Update)
		admin.DELETE("/events/:id", eventHandler.Delete)

		admin.GET("/committees", committeeHandler.ListAdmin)
		admin.POST("/committees", committeeHandler.Create)
		admin.PUT("/committees/:id", committeeHandler.Update)
		admin.DELETE("/committees/:id", committeeHandler.Delete)
		admin.POST("/committees/:id/members", committeeHandler.AddMember)
		admin.DELETE("/committees/:id/members/:memberId", committeeHandler.RemoveMember)

		admin.POST("/documents/:category", documentHandler.Create)
		admin.DELETE("/documents/:category/:id", documentHandler.Delete)

		admin.POST("/scrolling-note", noteHandler.Set)
		admin.DELETE("/scrolling-note", noteHandler.Clear)

		admin.POST("/upload", uploadHandler.Upload)

		admin.GET("/users", userHandler.List)
		admin.POST("/users", userHandler.Create)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
		admin.PUT("/users/:id/approve", userHandler.Approve)
		admin.POST("/users/:id/reset-password", userHandler.ResetPassword)

		admin.GET("/stats", userHandler.GetStats)

		admin.GET("/reports/members", reportHandler.ExportMembers)

		admin.GET("/auditlogs", auditHandler.GetAuditLogs)
		admin.GET("/auditlogs/:id", auditHandler.GetAuditLogByID)
	}
}
