package app

import (
	"cautivap/config"
	"cautivap/internal/controllers"
	"cautivap/internal/database"
	"cautivap/internal/handlers/middleware"
	"cautivap/internal/logger"
	"cautivap/internal/repositories"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Repository  repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	controllers := controllers.New(repos, config)
	middleware := middleware.New(db, config)

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Repository:  repos,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Repository.Record,
		a.Repository.Patient,
		a.Controllers.Checklist,
		a.Controllers.Records,
		a.Controllers.Analytics,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
