package feedback_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideFeedbackService, provideFeedbackController)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	journalistRepo repositories.JournalistRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	log *logrus.Logger,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, journalistRepo, companyRepo, log)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
