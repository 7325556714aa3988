package recordsController

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cautivap/config"
	"cautivap/internal/apperrors"
	"cautivap/internal/checklist"
	"cautivap/internal/logger"
	. "cautivap/internal/models"
	"cautivap/internal/repositories"

	"gorm.io/gorm"
)

type RecordsController struct {
	recordRepo  repositories.ChecklistRecordRepository
	patientRepo repositories.PatientRepository
	Config      config.Config
	log         logger.Logger
	now         func() time.Time
}

type RecordsControllerInterface interface {
	List(ctx context.Context, filters repositories.RecordFilters) ([]*ChecklistRecord, error)
	Delete(ctx context.Context, rawID string) (int, error)
	ListPatients(ctx context.Context, bed string) ([]*Patient, error)
	ExportCSV(records []*ChecklistRecord) (string, []byte)
	ExportXLSX(records []*ChecklistRecord) (string, []byte, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
) RecordsControllerInterface {
	return &RecordsController{
		recordRepo:  repos.Record,
		patientRepo: repos.Patient,
		Config:      config,
		log:         logger.New("recordsController"),
		now:         time.Now,
	}
}

func (c *RecordsController) List(
	ctx context.Context,
	filters repositories.RecordFilters,
) ([]*ChecklistRecord, error) {
	log := c.log.Function("List")

	for _, bound := range []struct{ name, value string }{
		{"date", filters.Date},
		{"startDate", filters.StartDate},
		{"endDate", filters.EndDate},
	} {
		if bound.value == "" {
			continue
		}
		if _, err := ParseDate(bound.value); err != nil {
			return nil, apperrors.Validation("%s must be a YYYY-MM-DD date.", bound.name)
		}
	}

	records, err := c.recordRepo.List(ctx, filters)
	if err != nil {
		return nil, log.Err("failed to list records", apperrors.Storage(err))
	}

	return records, nil
}

func (c *RecordsController) Delete(ctx context.Context, rawID string) (int, error) {
	log := c.log.Function("Delete")

	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation("Invalid record id.")
	}

	if err := c.recordRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound("Record not found.")
		}
		return 0, log.Err("failed to delete record", apperrors.Storage(err), "id", id)
	}

	return id, nil
}

func (c *RecordsController) ListPatients(
	ctx context.Context,
	bed string,
) ([]*Patient, error) {
	log := c.log.Function("ListPatients")

	patients, err := c.patientRepo.List(ctx, bed)
	if err != nil {
		return nil, log.Err("failed to list patients", apperrors.Storage(err))
	}

	return patients, nil
}

// ExportColumns is the fixed export column order: record metadata,
// reason fields, then every checklist key in definition order.
func ExportColumns() []string {
	columns := []string{"assessment_date", "bed_no", "hn", "assessment_scope"}
	for _, field := range checklist.ReasonFields() {
		columns = append(columns, field.Key)
	}
	return append(columns, checklist.Keys()...)
}

// ExportCSV renders the record set as CSV. Every cell is quoted,
// embedded quotes are doubled and nulls become empty strings, so the
// output survives any standard CSV parser.
func (c *RecordsController) ExportCSV(records []*ChecklistRecord) (string, []byte) {
	columns := ExportColumns()

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			sb.WriteByte('"')
		}
		sb.WriteByte('\n')
	}

	writeRow(columns)
	for _, record := range records {
		cells := make([]string, 0, len(columns))
		for _, column := range columns {
			cells = append(cells, exportCell(record, column))
		}
		writeRow(cells)
	}

	filename := fmt.Sprintf("cauti-vap-records-%d.csv", c.now().UnixMilli())
	return filename, []byte(sb.String())
}

func exportCell(record *ChecklistRecord, column string) string {
	switch column {
	case "assessment_date":
		return record.AssessmentDate.String()
	case "bed_no":
		return record.BedNo
	case "hn":
		return record.HN
	case "assessment_scope":
		return record.AssessmentScope
	case "cauti_1_no_reason", "vap_4_no_reason":
		if reason := record.Reason(column); reason != nil {
			return *reason
		}
		return ""
	default:
		value := record.Item(column)
		if value == nil {
			return ""
		}
		return strconv.FormatBool(*value)
	}
}
