package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/haminhduc/studygate/config"
	"github.com/haminhduc/studygate/database"
	_ "github.com/haminhduc/studygate/docs" // Swagger docs
	attemptctrl "github.com/haminhduc/studygate/internal/controller/attempt"
	authctrl "github.com/haminhduc/studygate/internal/controller/auth"
	"github.com/haminhduc/studygate/internal/controller/middleware"
	"github.com/haminhduc/studygate/internal/logger"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/query"
	"github.com/haminhduc/studygate/internal/repository"
	"github.com/haminhduc/studygate/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title StudyGate Assessment API
// @version 1.0
// @description Backend for an online assessment platform: test attempts, answers, and token-session authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			query.NewProvider,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewTestRepository,
			repository.NewSessionRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
		),

		fx.Provide(
			service.NewPasswordService,
			service.NewTokenService,
			service.NewAuthService,
			service.NewScoreScalerService,
			service.NewAttemptService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			attemptctrl.NewAttemptController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokenSvc service.TokenService,
	authCtrl *authctrl.AuthController,
	attemptCtrl *attemptctrl.AttemptController,
) {
	api := router.Group("/api/v1")

	api.POST("/auth/login", authCtrl.Login)

	authed := api.Group("")
	authed.Use(middleware.Auth(tokenSvc))
	{
		authed.POST("/auth/logout", authCtrl.Logout)

		attempts := authed.Group("/attempts")
		attempts.POST("", attemptCtrl.Start)
		attempts.GET("", attemptCtrl.List)
		attempts.GET("/in-progress", attemptCtrl.ListInProgress)
		attempts.GET("/:attempt_id", attemptCtrl.Get)
		attempts.POST("/:attempt_id/answers", attemptCtrl.SubmitAnswer)
		attempts.POST("/:attempt_id/complete", attemptCtrl.Complete)
		attempts.POST("/:attempt_id/abort", attemptCtrl.Abort)
		attempts.POST("/:attempt_id/resume", attemptCtrl.Resume)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StudyGate API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Test{},
		&model.Task{},
		&model.Attempt{},
		&model.Session{},
		&model.AnswerRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
