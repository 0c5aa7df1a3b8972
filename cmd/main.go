package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/MedQuest/config"
	"github.com/lshigami/MedQuest/database"
	_ "github.com/lshigami/MedQuest/docs" // Swagger docs
	adminctrl "github.com/lshigami/MedQuest/internal/controller/admin"
	authctrl "github.com/lshigami/MedQuest/internal/controller/auth"
	userctrl "github.com/lshigami/MedQuest/internal/controller/user"
	"github.com/lshigami/MedQuest/internal/logger"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/lshigami/MedQuest/internal/server"
	"github.com/lshigami/MedQuest/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title MedQuest API
// @version 1.0
// @description Exam-prep backend: accounts, a curated medical question bank, randomized quizzes and accuracy analytics.
// @contact.name API Support
// @license.name MIT
// @host localhost:3000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			server.NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewShuffler,
			service.NewTokenService,
			service.NewAuthService,
			service.NewUserService,
			service.NewQuestionService,
			service.NewAttemptService,
			service.NewAnalyticsService,
			service.NewQuestionDraftService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewUserController,
			adminctrl.NewAdminQuestionController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(CloseDatabaseOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func CloseDatabaseOnStop(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection")
			return sqlDB.Close()
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *authctrl.AuthController,
	userCtrl *userctrl.UserController,
	adminCtrl *adminctrl.AdminQuestionController,
) {
	server.RegisterRoutes(router, authService, authCtrl, userCtrl, adminCtrl, cfg.Server.StaticDir)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MedQuest API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
