package insights_fx

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"pressmatch/internal/insights"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideInsightsProvider, provideInsightsService)

// provideInsightsProvider reads INSIGHTS_PROVIDER and its backend
// credentials. Unset means the mock provider, which keeps local
// development and CI off the network.
func provideInsightsProvider(log *logrus.Logger) (insights.Provider, error) {
	provider := os.Getenv("INSIGHTS_PROVIDER")

	var apiKey string
	switch provider {
	case "deepseek":
		apiKey = os.Getenv("DEEPSEEK_API_KEY")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return insights.NewProvider(
		provider,
		apiKey,
		os.Getenv("INSIGHTS_BASE_URL"),
		os.Getenv("INSIGHTS_MODEL"),
		log,
	)
}

func provideInsightsService(
	provider insights.Provider,
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	log *logrus.Logger,
) services.InsightsServiceInterface {
	return services.NewInsightsService(provider, journalistRepo, companyRepo, log)
}
