// Package server builds the gin engine and mounts the MedQuest routes on it.
package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/MedQuest/config"
	adminctrl "github.com/lshigami/MedQuest/internal/controller/admin"
	authctrl "github.com/lshigami/MedQuest/internal/controller/auth"
	userctrl "github.com/lshigami/MedQuest/internal/controller/user"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/middleware"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("request_id", param.Request.Header.Get(middleware.RequestIDHeader)).
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
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	return r
}

// RegisterRoutes mounts the API under /api and, when staticDir is set, the SPA bundle.
func RegisterRoutes(
	router *gin.Engine,
	verifier middleware.TokenVerifier,
	authCtrl *authctrl.AuthController,
	userCtrl *userctrl.UserController,
	adminCtrl *adminctrl.AdminQuestionController,
	staticDir string,
) {
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
	}

	protected := api.Group("", middleware.RequireAuth(verifier))
	{
		protected.GET("/me", userCtrl.Me)
		protected.GET("/questions", userCtrl.ListQuestions)
		protected.GET("/specialties", userCtrl.ListSpecialties)
		protected.POST("/attempts", userCtrl.RecordAttempt)
		protected.GET("/analytics", userCtrl.Analytics)
		protected.POST("/subscribe", userCtrl.Subscribe)
	}

	admin := api.Group("", middleware.RequireAuth(verifier), middleware.RequireAdmin())
	{
		admin.POST("/questions", adminCtrl.CreateQuestion)
		admin.DELETE("/questions/:id", adminCtrl.DeleteQuestion)
		admin.GET("/admin/questions", adminCtrl.ListAllQuestions)
		admin.POST("/admin/questions/draft", adminCtrl.DraftQuestion)
	}

	router.NoRoute(spaFallback(staticDir))
}

// spaFallback serves files from dir and index.html for any other non-API path.
// Unknown /api paths always get a JSON 404.
func spaFallback(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	enabled := false
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			enabled = true
			log.Info().Str("dir", dir).Msg("Serving static client bundle")
		} else {
			log.Warn().Str("dir", dir).Msg("STATIC_DIR is not a directory, static hosting disabled")
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !enabled || path == "/api" || strings.HasPrefix(path, "/api/") ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
			return
		}
		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	}
}
