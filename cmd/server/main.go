package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/config"
	"github.com/openhire/job-board-api/internal/constants"
	"github.com/openhire/job-board-api/internal/database"
	"github.com/openhire/job-board-api/internal/handlers"
	"github.com/openhire/job-board-api/internal/middleware"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/notify"
	"github.com/openhire/job-board-api/internal/repository"
	"github.com/openhire/job-board-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS
	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	// Session store: Redis when configured, signed cookies otherwise
	var store sessions.Store
	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		var err error
		store, err = redisStore.NewStore(
			10,
			"tcp",
			redisAddr,
			"",
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			log.Fatalf("Failed to create Redis store: %v", err)
		}
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Inactivity timeout on every authenticated, non-static request
	r.Use(middleware.SessionActivity(time.Duration(cfg.SessionTimeout) * time.Second))

	// Notification sink: SMTP when configured, log otherwise
	var notifier notify.Notifier
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	} else {
		notifier = notify.NewLogNotifier()
	}

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	noteRepo := repository.NewNotificationRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(userRepo, jobRepo, appRepo)
	jobService := services.NewJobService(jobRepo, appRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, userRepo, noteRepo, notifier)
	notificationService := services.NewNotificationService(noteRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	jobHandler := handlers.NewJobHandler(jobService, authService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, authService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Job Board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Job catalog: search and detail are public
		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.SearchJobs)
			jobs.GET("/recent", jobHandler.RecentJobs)
			jobs.GET("/:id", middleware.LoadIdentity(), jobHandler.GetJob)
			jobs.POST("", middleware.RequireAuth(), middleware.RequireRole(models.RoleEmployer), jobHandler.CreateJob)
			jobs.PUT("/:id", middleware.RequireAuth(), jobHandler.UpdateJob)
			jobs.DELETE("/:id", middleware.RequireAuth(), jobHandler.DeleteJob)
			jobs.POST("/:id/apply", middleware.RequireAuth(), middleware.RequireRole(models.RoleSeeker), applicationHandler.Apply)
			jobs.GET("/:id/applications", middleware.RequireAuth(), applicationHandler.ListForJob)
		}

		// Application lifecycle (protected)
		applications := api.Group("/applications")
		applications.Use(middleware.RequireAuth())
		{
			applications.GET("", middleware.RequireRole(models.RoleSeeker), applicationHandler.ListMine)
			applications.PATCH("/:id/status", applicationHandler.UpdateStatus)
			applications.DELETE("/:id", applicationHandler.Delete)
		}

		// Profiles and dashboard (protected)
		api.GET("/dashboard", middleware.RequireAuth(), profileHandler.GetDashboard)
		profile := api.Group("/profile")
		profile.Use(middleware.RequireAuth())
		{
			profile.GET("/seeker", middleware.RequireRole(models.RoleSeeker), profileHandler.GetSeekerProfile)
			profile.PUT("/seeker", middleware.RequireRole(models.RoleSeeker), profileHandler.UpdateSeekerProfile)
			profile.GET("/employer", middleware.RequireRole(models.RoleEmployer), profileHandler.GetEmployerProfile)
			profile.PUT("/employer", middleware.RequireRole(models.RoleEmployer), profileHandler.UpdateEmployerProfile)
		}

		// In-app notifications (protected)
		notifications := api.Group("/notifications")
		notifications.Use(middleware.RequireAuth())
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
