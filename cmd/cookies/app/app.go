package app

import (
	"github.com/ncobase/cookies/config"
	"github.com/ncobase/cookies/logging/logger"
)

// App holds what every command needs once the configuration is loaded.
type App struct {
	Config *config.Config
	Logger *logger.Logger
	Cookie *config.Cookie
}

func NewApp(cfg *config.Config, log *logger.Logger, cookie *config.Cookie) *App {
	return &App{
		Config: cfg,
		Logger: log,
		Cookie: cookie,
	}
}
