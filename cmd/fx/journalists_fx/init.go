package journalists_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideJournalistRepo, provideJournalistService, provideJournalistController)

func provideJournalistRepo(db *gorm.DB) repositories.JournalistRepositoryInterface {
	return repositories.NewJournalistRepository(db)
}

func provideJournalistService(
	journalistRepo repositories.JournalistRepositoryInterface,
	topicRepo repositories.TopicRepositoryInterface,
	embeddingService services.EmbeddingServiceInterface,
	log *logrus.Logger,
) services.JournalistServiceInterface {
	return services.NewJournalistService(journalistRepo, topicRepo, embeddingService, log)
}

func provideJournalistController(journalistService services.JournalistServiceInterface) *controllers.JournalistController {
	return controllers.NewJournalistController(journalistService)
}
