package repositories

import (
	"context"

	"cautivap/internal/database"
	"cautivap/internal/logger"
	. "cautivap/internal/models"

	"gorm.io/gorm"
)

// RecordFilters narrows a record listing. Zero values mean "no
// filter". Date filters are YYYY-MM-DD strings matched against the
// assessment_date column; HN is a case-insensitive substring match.
type RecordFilters struct {
	Date      string
	Bed       string
	HN        string
	StartDate string
	EndDate   string
}

type ChecklistRecordRepository interface {
	Create(ctx context.Context, record *ChecklistRecord) error
	List(ctx context.Context, filters RecordFilters) ([]*ChecklistRecord, error)
	// ListRange projects only the named columns over an inclusive
	// assessment date range; either bound may be empty.
	ListRange(ctx context.Context, startDate, endDate string, columns []string) ([]*ChecklistRecord, error)
	Delete(ctx context.Context, id int) error
}

type checklistRecordRepository struct {
	db  database.DB
	log logger.Logger
}

func NewChecklistRecordRepository(db database.DB) ChecklistRecordRepository {
	return &checklistRecordRepository{
		db:  db,
		log: logger.New("checklistRecordRepository"),
	}
}

func (r *checklistRecordRepository) Create(
	ctx context.Context,
	record *ChecklistRecord,
) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(record).Error; err != nil {
		return log.Err("failed to create checklist record", err,
			"bedNo", record.BedNo,
			"hn", record.HN,
		)
	}

	return nil
}

func (r *checklistRecordRepository) List(
	ctx context.Context,
	filters RecordFilters,
) ([]*ChecklistRecord, error) {
	log := r.log.Function("List")

	query := r.db.SQLWithContext(ctx).
		Model(&ChecklistRecord{}).
		Order("assessment_date DESC").
		Order("created_at DESC")

	if filters.Date != "" {
		query = query.Where("assessment_date = ?", filters.Date)
	}
	if filters.Bed != "" {
		query = query.Where("bed_no = ?", filters.Bed)
	}
	if filters.HN != "" {
		query = query.Where("hn ILIKE ?", "%"+filters.HN+"%")
	}
	if filters.StartDate != "" {
		query = query.Where("assessment_date >= ?", filters.StartDate)
	}
	if filters.EndDate != "" {
		query = query.Where("assessment_date <= ?", filters.EndDate)
	}

	var records []*ChecklistRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, log.Err("failed to list checklist records", err)
	}

	return records, nil
}

func (r *checklistRecordRepository) ListRange(
	ctx context.Context,
	startDate, endDate string,
	columns []string,
) ([]*ChecklistRecord, error) {
	log := r.log.Function("ListRange")

	query := r.db.SQLWithContext(ctx).
		Model(&ChecklistRecord{}).
		Select(columns)

	if startDate != "" {
		query = query.Where("assessment_date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("assessment_date <= ?", endDate)
	}

	var records []*ChecklistRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, log.Err("failed to list checklist records for range", err,
			"startDate", startDate,
			"endDate", endDate,
		)
	}

	return records, nil
}

func (r *checklistRecordRepository) Delete(ctx context.Context, id int) error {
	log := r.log.Function("Delete")

	result := r.db.SQLWithContext(ctx).
		Where("id = ?", id).
		Delete(&ChecklistRecord{})

	if result.Error != nil {
		return log.Err("failed to delete checklist record", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
