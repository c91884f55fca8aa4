package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/cmd/fx/analytics_fx"
	"pressmatch/cmd/fx/auth_fx"
	"pressmatch/cmd/fx/companies_fx"
	"pressmatch/cmd/fx/db_fx"
	"pressmatch/cmd/fx/embeddings_fx"
	"pressmatch/cmd/fx/feedback_fx"
	"pressmatch/cmd/fx/insights_fx"
	"pressmatch/cmd/fx/journalists_fx"
	"pressmatch/cmd/fx/matching_fx"
	"pressmatch/cmd/fx/topics_fx"
	"pressmatch/internal/api/controllers"
	"pressmatch/internal/infra"
	"pressmatch/internal/models/db_models"
	"pressmatch/internal/services"
	"pressmatch/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		auth_fx.Module,
		topics_fx.Module,
		embeddings_fx.Module,
		journalists_fx.Module,
		companies_fx.Module,
		matching_fx.Module,
		feedback_fx.Module,
		insights_fx.Module,
		analytics_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedTopics),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// SeedTopics makes sure the baseline taxonomy exists before the server
// accepts traffic. Safe to run on every start.
func SeedTopics(topicService services.TopicServiceInterface, logger *logrus.Logger) error {
	created, err := topicService.SeedTopics(context.Background())
	if err != nil {
		return err
	}
	if created > 0 {
		logger.WithField("created", created).Info("Seeded topic taxonomy")
	}
	return nil
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *logrus.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.WithField("addr", srv.Addr).Info("Starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	logger *logrus.Logger,
	authController *controllers.AuthController,
	topicController *controllers.TopicController,
	journalistController *controllers.JournalistController,
	companyController *controllers.CompanyController,
	matchingController *controllers.MatchingController,
	feedbackController *controllers.FeedbackController,
	analyticsController *controllers.AnalyticsController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.RegisterHandler)
	authGroup.POST("/login", authController.LoginHandler)

	topicsGroup := r.Group("/topics")
	topicsGroup.GET("", topicController.ListTopicsHandler)
	topicsGroup.POST("", middleware.JWTAuthMiddleware(), middleware.RequireUserType(db_models.UserTypeAdmin), topicController.CreateTopicHandler)

	journalistsGroup := r.Group("/journalists", middleware.JWTAuthMiddleware(), middleware.RequireUserType(db_models.UserTypeJournalist))
	journalistsGroup.POST("/profile", journalistController.CreateProfileHandler)
	journalistsGroup.PUT("/profile", journalistController.UpdateProfileHandler)
	journalistsGroup.GET("/profile", journalistController.GetMyProfileHandler)

	companiesGroup := r.Group("/companies", middleware.JWTAuthMiddleware(), middleware.RequireUserType(db_models.UserTypeCompany))
	companiesGroup.POST("/profile", companyController.CreateProfileHandler)
	companiesGroup.PUT("/profile", companyController.UpdateProfileHandler)
	companiesGroup.GET("/profile", companyController.GetMyProfileHandler)

	// Companies search for journalists, journalists search for companies.
	matchesGroup := r.Group("/matches", middleware.JWTAuthMiddleware())
	companyMatches := matchesGroup.Group("", middleware.RequireUserType(db_models.UserTypeCompany))
	companyMatches.GET("/journalists", matchingController.FindJournalistsHandler)
	companyMatches.GET("/journalists/similar", matchingController.FindSimilarJournalistsHandler)
	companyMatches.GET("/journalists/:id/insights", matchingController.JournalistInsightsHandler)

	journalistMatches := matchesGroup.Group("", middleware.RequireUserType(db_models.UserTypeJournalist))
	journalistMatches.GET("/companies", matchingController.FindCompaniesHandler)
	journalistMatches.GET("/companies/similar", matchingController.FindSimilarCompaniesHandler)
	journalistMatches.GET("/companies/:id/insights", matchingController.CompanyInsightsHandler)

	feedbackGroup := r.Group("/feedback", middleware.JWTAuthMiddleware())
	feedbackGroup.POST("", feedbackController.SubmitFeedbackHandler)
	feedbackGroup.GET("", feedbackController.ListMyFeedbackHandler)
	feedbackGroup.GET("/stats", middleware.RequireUserType(db_models.UserTypeAdmin), feedbackController.FeedbackStatsHandler)

	analyticsGroup := r.Group("/analytics", middleware.JWTAuthMiddleware())
	analyticsGroup.GET("/me", analyticsController.MyMetricsHandler)
	analyticsGroup.GET("/platform", middleware.RequireUserType(db_models.UserTypeAdmin), analyticsController.PlatformMetricsHandler)

	return r
}
