package repositories

import (
	"cautivap/internal/database"
)

type Repository struct {
	Record  ChecklistRecordRepository
	Patient PatientRepository
}

func New(db database.DB) Repository {
	return Repository{
		Record:  NewChecklistRecordRepository(db),
		Patient: NewPatientRepository(db),
	}
}
