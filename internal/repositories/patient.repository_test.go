package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRepository_List_OrderedByBed(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPatientRepository(db)

	rows := sqlmock.NewRows([]string{"bed_no", "hn", "patient_name"}).
		AddRow("1", "650001234", "นายสมชาย ใจดี").
		AddRow("2", "650002345", "นางสมหญิง รักษ์ดี")

	mock.ExpectQuery(`SELECT (.+) FROM "patients" ORDER BY bed_no ASC`).
		WillReturnRows(rows)

	patients, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "1", patients[0].BedNo)
	assert.Equal(t, "นายสมชาย ใจดี", patients[0].PatientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_List_BedFilter(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPatientRepository(db)

	rows := sqlmock.NewRows([]string{"bed_no", "hn", "patient_name"}).
		AddRow("3", "650003456", "นายประเสริฐ มั่นคง")

	mock.ExpectQuery(`SELECT (.+) FROM "patients" WHERE bed_no = \$1 ORDER BY bed_no ASC`).
		WithArgs("3").
		WillReturnRows(rows)

	patients, err := repo.List(context.Background(), "3")

	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "650003456", patients[0].HN)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientRepository_List_StoreError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPatientRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM "patients"`).
		WillReturnError(errors.New("relation \"patients\" does not exist"))

	_, err := repo.List(context.Background(), "")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
