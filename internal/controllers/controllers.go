package controllers

import (
	"cautivap/config"
	"cautivap/internal/repositories"

	analyticsController "cautivap/internal/controllers/analytics"
	checklistController "cautivap/internal/controllers/checklist"
	recordsController "cautivap/internal/controllers/records"
)

type Controllers struct {
	Checklist checklistController.ChecklistControllerInterface
	Records   recordsController.RecordsControllerInterface
	Analytics analyticsController.AnalyticsControllerInterface
}

func New(
	repos repositories.Repository,
	config config.Config,
) Controllers {
	return Controllers{
		Checklist: checklistController.New(repos, config),
		Records:   recordsController.New(repos, config),
		Analytics: analyticsController.New(repos, config),
	}
}
