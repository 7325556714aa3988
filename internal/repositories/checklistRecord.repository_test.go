package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"cautivap/internal/database"
	. "cautivap/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (database.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open gorm db: %v", err)
	}

	return database.DB{SQL: gormDB}, mock
}

func TestChecklistRecordRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "checklist_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	answered := true
	record := &ChecklistRecord{
		AssessmentDate:  NewDate(time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)),
		BedNo:           "12",
		HN:              "650001234",
		AssessmentScope: "cauti",
		Cauti1:          &answered,
	}

	err := repo.Create(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, 7, record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistRecordRepository_Create_StoreError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "checklist_records"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &ChecklistRecord{BedNo: "1", HN: "H1"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistRecordRepository_List_AppliesFilters(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	rows := sqlmock.NewRows([]string{"id", "assessment_date", "bed_no", "hn", "assessment_scope"}).
		AddRow(1, "2026-08-28", "12", "650001234", "both")

	mock.ExpectQuery(`SELECT (.+) FROM "checklist_records" WHERE assessment_date = \$1 AND bed_no = \$2 AND hn ILIKE \$3 ORDER BY assessment_date DESC,created_at DESC`).
		WithArgs("2026-08-28", "12", "%6500%").
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), RecordFilters{
		Date: "2026-08-28",
		Bed:  "12",
		HN:   "6500",
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "650001234", records[0].HN)
	assert.Equal(t, "2026-08-28", records[0].AssessmentDate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistRecordRepository_List_NoFilters(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "checklist_records" ORDER BY assessment_date DESC,created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := repo.List(context.Background(), RecordFilters{})

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistRecordRepository_ListRange_ProjectsColumns(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	rows := sqlmock.NewRows([]string{"assessment_date", "cauti_1"}).
		AddRow("2026-08-01", true).
		AddRow("2026-08-02", false)

	mock.ExpectQuery(`SELECT "assessment_date","cauti_1" FROM "checklist_records" WHERE assessment_date >= \$1 AND assessment_date <= \$2`).
		WithArgs("2026-08-01", "2026-08-31").
		WillReturnRows(rows)

	records, err := repo.ListRange(
		context.Background(),
		"2026-08-01",
		"2026-08-31",
		[]string{"assessment_date", "cauti_1"},
	)

	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].Cauti1)
	assert.True(t, *records[0].Cauti1)
	require.NotNil(t, records[1].Cauti1)
	assert.False(t, *records[1].Cauti1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistRecordRepository_Delete(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "checklist_records" WHERE id = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChecklistRecordRepository_Delete_NoRowsIsNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewChecklistRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "checklist_records" WHERE id = \$1`).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
