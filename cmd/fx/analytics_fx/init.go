package analytics_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideAnalyticsService, provideAnalyticsController)

func provideAnalyticsService(
	userRepo repositories.UserRepositoryInterface,
	topicRepo repositories.TopicRepositoryInterface,
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	feedbackRepo repositories.FeedbackRepositoryInterface,
	matchingService services.MatchingServiceInterface,
	log *logrus.Logger,
) services.AnalyticsServiceInterface {
	return services.NewAnalyticsService(userRepo, topicRepo, journalistRepo, companyRepo, feedbackRepo, matchingService, log)
}

func provideAnalyticsController(analyticsService services.AnalyticsServiceInterface) *controllers.AnalyticsController {
	return controllers.NewAnalyticsController(analyticsService)
}
