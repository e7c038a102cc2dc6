package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authpkg "github.com/Ophelia-lia/customer-system/auth"
	authrepo "github.com/Ophelia-lia/customer-system/auth/repository"
	authsvc "github.com/Ophelia-lia/customer-system/auth/service"
	"github.com/Ophelia-lia/customer-system/config"
	"github.com/Ophelia-lia/customer-system/entity"
	api "github.com/Ophelia-lia/customer-system/handler"
	"github.com/Ophelia-lia/customer-system/middleware"
	"github.com/Ophelia-lia/customer-system/realtime"
	recordrepo "github.com/Ophelia-lia/customer-system/record/repository"
	recordsvc "github.com/Ophelia-lia/customer-system/record/service"
	settingsrepo "github.com/Ophelia-lia/customer-system/settings/repository"
	settingssvc "github.com/Ophelia-lia/customer-system/settings/service"
	visionsvc "github.com/Ophelia-lia/customer-system/vision/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}

	db := setupDatabase(cfg)

	authRepo := authrepo.NewGormAuthRepo(db)
	authService := authsvc.NewAuthService(authRepo, cfg.JWTSecret)
	authHandler := api.NewAuthHandler(authService)

	if err := authService.Seed(context.Background(), []authpkg.SeedAccount{
		{Username: "admin", Password: cfg.AdminPassword, Role: entity.RoleAdmin},
		{Username: "guest", Password: cfg.GuestPassword, Role: entity.RoleReader},
	}); err != nil {
		log.Fatal("failed to seed users:", err)
	}

	hub := realtime.NewHub()

	recordRepo := recordrepo.NewGormRecordRepo(db)
	recordService := recordsvc.NewRecordService(recordRepo)

	settingsRepo := settingsrepo.NewGormSettingsRepo(db)
	settingsService := settingssvc.NewSettingsService(settingsRepo)

	recordHandler := api.NewRecordHandler(recordService, settingsService, hub)
	settingsHandler := api.NewSettingsHandler(settingsService, hub)

	visionService := visionsvc.NewVisionService(cfg.VisionAPIKey, cfg.VisionBaseURL, cfg.VisionModel)
	visionHandler := api.NewVisionHandler(visionService)

	wsHandler := api.NewWSHandler(hub)

	r := gin.Default()
	r.Use(gin.Recovery(), gin.Logger())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	apiRoutes := r.Group("/api")
	{
		apiRoutes.POST("/login", authHandler.Login())

		authed := apiRoutes.Group("", middleware.RequireAuth(cfg.JWTSecret))
		{
			authed.GET("/me", authHandler.Me())
			authed.GET("/load_data", recordHandler.LoadData())
			authed.GET("/ws", wsHandler.Socket())
		}

		adminOnly := apiRoutes.Group("", middleware.RequireAuth(cfg.JWTSecret), middleware.RequireRoles(entity.RoleAdmin))
		{
			adminOnly.POST("/save_data", recordHandler.SaveData())
			adminOnly.PATCH("/customer/:id", recordHandler.UpsertCustomer())
			adminOnly.DELETE("/customer/:id", recordHandler.DeleteCustomer())
			adminOnly.PATCH("/settings", settingsHandler.UpdateSettings())
			adminOnly.POST("/parse_report", visionHandler.ParseReport())
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server stopped:", err)
	}
}
