package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
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
	"github.com/samajconnect/portal-backend/internal/scrollingnote"
	"github.com/samajconnect/portal-backend/routes"
	"github.com/samajconnect/portal-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("Redis init failed, password reset tokens unavailable: %v", err)
	}

	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()

	utils.InitEmail(cfg)

	auditlog.StartKafkaConsumer(auditlog.NewRepository(db))

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&auth.User{},
		&member.Member{},
		&homeimage.HomeImage{},
		&event.Event{},
		&committee.Committee{},
		&committee.CommitteeMember{},
		&document.Document{},
		&scrollingnote.ScrollingNote{},
		&auditlog.AuditLog{},
	); err != nil {
		log.Fatalf("DB AutoMigrate failed: %v", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
