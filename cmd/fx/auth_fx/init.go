package auth_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/api/controllers"
	"pressmatch/internal/repositories"
	"pressmatch/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepositoryInterface, log *logrus.Logger) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, log)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
