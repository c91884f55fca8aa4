package topics_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideTopicRepo, provideTopicService, provideTopicController)

func provideTopicRepo(db *gorm.DB) repositories.TopicRepositoryInterface {
	return repositories.NewTopicRepository(db)
}

func provideTopicService(topicRepo repositories.TopicRepositoryInterface, log *logrus.Logger) services.TopicServiceInterface {
	return services.NewTopicService(topicRepo, log)
}

func provideTopicController(topicService services.TopicServiceInterface) *controllers.TopicController {
	return controllers.NewTopicController(topicService)
}
