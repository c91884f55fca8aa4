package matching_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideMatchingService, provideSimilarityService, provideMatchingController)

func provideMatchingService(
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	log *logrus.Logger,
) services.MatchingServiceInterface {
	return services.NewMatchingService(journalistRepo, companyRepo, log)
}

func provideSimilarityService(
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	embeddingRepo repositories.EmbeddingRepositoryInterface,
	log *logrus.Logger,
) services.SimilarityServiceInterface {
	return services.NewSimilarityService(journalistRepo, companyRepo, embeddingRepo, log)
}

func provideMatchingController(
	matchingService services.MatchingServiceInterface,
	similarityService services.SimilarityServiceInterface,
	insightsService services.InsightsServiceInterface,
) *controllers.MatchingController {
	return controllers.NewMatchingController(matchingService, similarityService, insightsService)
}
