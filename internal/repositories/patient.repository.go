package repositories

import (
	"context"

	"cautivap/internal/database"
	"cautivap/internal/logger"
	. "cautivap/internal/models"
)

type PatientRepository interface {
	List(ctx context.Context, bed string) ([]*Patient, error)
}

type patientRepository struct {
	db  database.DB
	log logger.Logger
}

func NewPatientRepository(db database.DB) PatientRepository {
	return &patientRepository{
		db:  db,
		log: logger.New("patientRepository"),
	}
}

func (r *patientRepository) List(ctx context.Context, bed string) ([]*Patient, error) {
	log := r.log.Function("List")

	query := r.db.SQLWithContext(ctx).
		Model(&Patient{}).
		Order("bed_no ASC")

	if bed != "" {
		query = query.Where("bed_no = ?", bed)
	}

	var patients []*Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, log.Err("failed to list patients", err, "bed", bed)
	}

	return patients, nil
}
