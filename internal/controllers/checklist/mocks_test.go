package checklistController

import (
	"context"

	. "cautivap/internal/models"
	"cautivap/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type mockRecordRepo struct {
	mock.Mock
}

var _ repositories.ChecklistRecordRepository = (*mockRecordRepo)(nil)

func (m *mockRecordRepo) Create(ctx context.Context, record *ChecklistRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRecordRepo) List(
	ctx context.Context,
	filters repositories.RecordFilters,
) ([]*ChecklistRecord, error) {
	args := m.Called(ctx, filters)
	if records, ok := args.Get(0).([]*ChecklistRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordRepo) ListRange(
	ctx context.Context,
	startDate, endDate string,
	columns []string,
) ([]*ChecklistRecord, error) {
	args := m.Called(ctx, startDate, endDate, columns)
	if records, ok := args.Get(0).([]*ChecklistRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
