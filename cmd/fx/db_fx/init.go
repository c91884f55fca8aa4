package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pressmatch/internal/infra"
	"pressmatch/pkg/logger"

	"github.com/sirupsen/logrus"
)

var Module = fx.Provide(
	provideLogger,
	provideDB)

func provideLogger() *logrus.Logger {
	return logger.New()
}

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
