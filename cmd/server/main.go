package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Aravind0145/Job-Seeker-Backend/internal/config"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/handler"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/mail"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/middleware"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/repository"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/security"
	"github.com/Aravind0145/Job-Seeker-Backend/internal/service"
	"github.com/Aravind0145/Job-Seeker-Backend/pkg/database"
	"github.com/Aravind0145/Job-Seeker-Backend/pkg/redis"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	redisClient, err := redis.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	rateLimiter := security.NewRateLimiter(security.RateLimiterConfig{
		Redis:    redisClient,
		Limit:    cfg.RateLimitPerMinute,
		Interval: cfg.RateLimitInterval,
	})

	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure mailer")
	}

	// Repositories
	employerRepo := repository.NewEmployerRepository(db)
	seekerRepo := repository.NewJobSeekerRepository(db)
	postingRepo := repository.NewJobPostingRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Services
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	employerService := service.NewEmployerService(employerRepo, seekerRepo, postingRepo, resumeRepo, applicationRepo, mailer)
	seekerService := service.NewJobSeekerService(seekerRepo, postingRepo, resumeRepo, applicationRepo, mailer)

	// Handlers
	employerHandler := handler.NewEmployerHandler(employerService, tokens)
	seekerHandler := handler.NewJobSeekerHandler(seekerService, tokens)
	profileHandler := handler.NewProfileHandler(employerService, seekerService)

	router := setupRouter(cfg, employerHandler, seekerHandler, profileHandler, tokens, rateLimiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("Server started")
	log.Info().Int("limit", cfg.RateLimitPerMinute).Dur("interval", cfg.RateLimitInterval).Msg("Rate limiting enabled")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func setupRouter(
	cfg *config.Config,
	employerHandler *handler.EmployerHandler,
	seekerHandler *handler.JobSeekerHandler,
	profileHandler *handler.ProfileHandler,
	tokens *service.TokenService,
	rateLimiter *security.RateLimiter,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(rateLimiter.GinMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().Unix(),
			})
		})

		// ========== EMPLOYER ROUTES ==========
		employer := api.Group("/employer")
		{
			employer.POST("/register", employerHandler.Register)
			employer.POST("/login", employerHandler.Login)
			employer.PUT("/forgot-password", employerHandler.UpdatePassword)
			employer.GET("/update-email", employerHandler.CheckEmail)
			employer.GET("/emp-profile/:id", employerHandler.GetProfile)
			employer.PUT("/update-employee-profile/:id", employerHandler.UpdateProfile)
			employer.POST("/post-jobs/:id", employerHandler.PostJob)
			employer.GET("/view-jobpostings/:id", employerHandler.ViewJobPostings)
			employer.PUT("/update-jobposting/:id", employerHandler.UpdateJobPosting)
			employer.GET("/applied-counts/:jobPostingId", employerHandler.ApplicantCount)
			employer.GET("/resume-details/:jobPostingId", employerHandler.ResumesByJobPosting)
			employer.GET("/application-details/:jobPostingId", employerHandler.ApplicationsByJobPosting)
			employer.PUT("/update-application/:id", employerHandler.UpdateApplication)
		}

		// ========== JOB SEEKER ROUTES ==========
		jobseeker := api.Group("/jobseeker")
		{
			jobseeker.POST("/register", seekerHandler.Register)
			jobseeker.POST("/frontpage", seekerHandler.Login)
			jobseeker.PUT("/forgot-password", seekerHandler.UpdatePassword)
			jobseeker.GET("/update-emails", seekerHandler.CheckEmail)
			jobseeker.GET("/view-profile/:id", seekerHandler.GetProfile)
			jobseeker.PUT("/update-profile/:id", seekerHandler.UpdateProfile)
			jobseeker.POST("/resume/:id", seekerHandler.AddResume)
			jobseeker.GET("/resume/check/:jobseekerId", seekerHandler.CheckResumeExistence)
			jobseeker.GET("/homepage/:id", seekerHandler.ResumeByJobSeeker)
			jobseeker.GET("/view-resume/:id", seekerHandler.ViewResume)
			jobseeker.PUT("/update-resume/:id", seekerHandler.UpdateResume)
			jobseeker.POST("/job-details/:jobPostingId/:jobSeekerId/:resumeId", seekerHandler.Apply)
			jobseeker.GET("/applyjobs/:jobSeekerId", seekerHandler.AppliedJobs)
			jobseeker.DELETE("/:jobSeekerId/applications/:applicationId", seekerHandler.Withdraw)
			jobseeker.GET("/search-job/:jobTitle/:location/:experience", seekerHandler.SearchJobs)
			jobseeker.GET("/list-jobpostings/:page/:size", employerHandler.ListJobPostings)
		}

		// ========== APPLICATION ROUTES ==========
		api.POST("/applications/:jobPostingId/:jobSeekerId/:applicationId", employerHandler.Shortlist)
		api.GET("/applications/status", seekerHandler.CheckApplicationStatus)
		api.DELETE("/delete-jobposting/:id", employerHandler.DeleteJobPosting)

		// ========== PROTECTED ROUTES ==========
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(tokens))
		{
			protected.GET("/profile", profileHandler.Me)
		}
	}

	return router
}
