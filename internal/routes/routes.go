package routes

import (
	"net/http"

	"github.com/catalys/platform/internal/config"
	"github.com/catalys/platform/internal/database"
	"github.com/catalys/platform/internal/handlers"
	"github.com/catalys/platform/internal/middleware"
	"github.com/catalys/platform/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"db_connected": database.GetDB() != nil,
		})
	})

	db := database.GetDB()

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(cfg, db)
	profileService := services.NewProfileService(db)
	startupService := services.NewStartupService(db)
	coFounderService := services.NewCoFounderService(db)
	organizationService := services.NewOrganizationService(db, emailService)
	onboardingService := services.NewOnboardingService(db)
	documentService := services.NewDocumentService(cfg)
	submissionService := services.NewSubmissionService(startupService, coFounderService, organizationService, onboardingService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, emailService)
	profileHandler := handlers.NewProfileHandler(profileService)
	startupHandler := handlers.NewStartupHandler(startupService, coFounderService, documentService, authService)
	invitationHandler := handlers.NewInvitationHandler(coFounderService, organizationService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService, submissionService)

	// API routes
	api := router.Group("/api")

	// Middleware to check database readiness
	api.Use(func(c *gin.Context) {
		if database.GetDB() == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service initializing, please try again shortly",
			})
			return
		}
		c.Next()
	})

	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/verify-email", authHandler.VerifyEmail)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)

			// Protected auth routes
			authProtected := auth.Group("")
			authProtected.Use(middleware.AuthMiddleware(authService))
			{
				authProtected.GET("/me", authHandler.GetCurrentUser)
			}
		}

		// Profile routes
		profiles := api.Group("/profiles")
		profiles.Use(middleware.AuthMiddleware(authService))
		{
			profiles.GET("/me", profileHandler.GetCurrentProfile)
			profiles.POST("", profileHandler.CreateProfile)
			profiles.PUT("", profileHandler.UpdateProfile)
		}

		// Onboarding wizard (founders only)
		onboarding := api.Group("/onboarding")
		onboarding.Use(middleware.AuthMiddleware(authService), middleware.RequireFounder())
		{
			onboarding.GET("/draft", onboardingHandler.GetDraft)
			onboarding.PUT("/draft", onboardingHandler.SaveDraft)
			onboarding.POST("/next", onboardingHandler.NextStep)
			onboarding.POST("/prev", onboardingHandler.PrevStep)
			onboarding.GET("/preview", onboardingHandler.GetPreview)
			onboarding.POST("/submit", onboardingHandler.Submit)
		}

		// Startup routes
		startups := api.Group("/startups")
		{
			// Public card by slug
			startups.GET("/:slug", startupHandler.GetBySlug)

			startupsProtected := startups.Group("")
			startupsProtected.Use(middleware.AuthMiddleware(authService))
			{
				startupsProtected.GET("/:slug/application.pdf", startupHandler.DownloadApplication)
			}
		}

		startupsByID := api.Group("/startup")
		startupsByID.Use(middleware.AuthMiddleware(authService))
		{
			startupsByID.PATCH("/:id", startupHandler.Update)
			startupsByID.GET("/:id/cofounders", startupHandler.GetCoFounders)
		}

		// Organization routes
		organizations := api.Group("/organizations")
		organizations.Use(middleware.AuthMiddleware(authService))
		{
			organizations.GET("/:id/startup", startupHandler.GetByOrganization)
			organizations.GET("/:id/cofounders", invitationHandler.GetOrganizationCoFounders)
			organizations.POST("/startups", startupHandler.GetByOrganizations)
		}

		// Invitation routes
		invitations := api.Group("/invitations")
		{
			// Public lookup for the accept-invite page
			invitations.GET("/:id", invitationHandler.GetInvitation)

			invitationsProtected := invitations.Group("")
			invitationsProtected.Use(middleware.AuthMiddleware(authService))
			{
				invitationsProtected.POST("/:id/accept", invitationHandler.AcceptInvitation)
				invitationsProtected.POST("/:id/decline", invitationHandler.DeclineInvitation)
			}
		}
	}

	return router
}
