package companies_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideCompanyRepo, provideCompanyService, provideCompanyController)

func provideCompanyRepo(db *gorm.DB) repositories.CompanyRepositoryInterface {
	return repositories.NewCompanyRepository(db)
}

func provideCompanyService(
	companyRepo repositories.CompanyRepositoryInterface,
	topicRepo repositories.TopicRepositoryInterface,
	embeddingService services.EmbeddingServiceInterface,
	log *logrus.Logger,
) services.CompanyServiceInterface {
	return services.NewCompanyService(companyRepo, topicRepo, embeddingService, log)
}

func provideCompanyController(companyService services.CompanyServiceInterface) *controllers.CompanyController {
	return controllers.NewCompanyController(companyService)
}
