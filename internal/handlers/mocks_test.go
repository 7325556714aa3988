package handlers

import (
	"context"

	"cautivap/internal/checklist"
	. "cautivap/internal/models"
	"cautivap/internal/repositories"

	analyticsController "cautivap/internal/controllers/analytics"
	checklistController "cautivap/internal/controllers/checklist"
	recordsController "cautivap/internal/controllers/records"

	"github.com/stretchr/testify/mock"
)

type mockChecklistController struct {
	mock.Mock
}

var _ checklistController.ChecklistControllerInterface = (*mockChecklistController)(nil)

func (m *mockChecklistController) Definition() checklist.Definition {
	m.Called()
	return checklist.GetDefinition()
}

func (m *mockChecklistController) Submit(
	ctx context.Context,
	request *checklistController.SubmitRequest,
) (*ChecklistRecord, error) {
	args := m.Called(ctx, request)
	if record, ok := args.Get(0).(*ChecklistRecord); ok {
		return record, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRecordsController struct {
	mock.Mock
}

var _ recordsController.RecordsControllerInterface = (*mockRecordsController)(nil)

func (m *mockRecordsController) List(
	ctx context.Context,
	filters repositories.RecordFilters,
) ([]*ChecklistRecord, error) {
	args := m.Called(ctx, filters)
	if records, ok := args.Get(0).([]*ChecklistRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordsController) Delete(ctx context.Context, rawID string) (int, error) {
	args := m.Called(ctx, rawID)
	return args.Int(0), args.Error(1)
}

func (m *mockRecordsController) ListPatients(
	ctx context.Context,
	bed string,
) ([]*Patient, error) {
	args := m.Called(ctx, bed)
	if patients, ok := args.Get(0).([]*Patient); ok {
		return patients, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRecordsController) ExportCSV(records []*ChecklistRecord) (string, []byte) {
	args := m.Called(records)
	return args.String(0), args.Get(1).([]byte)
}

func (m *mockRecordsController) ExportXLSX(records []*ChecklistRecord) (string, []byte, error) {
	args := m.Called(records)
	if data, ok := args.Get(1).([]byte); ok {
		return args.String(0), data, args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

type mockAnalyticsController struct {
	mock.Mock
}

var _ analyticsController.AnalyticsControllerInterface = (*mockAnalyticsController)(nil)

func (m *mockAnalyticsController) Aggregate(
	ctx context.Context,
	request analyticsController.Request,
) (*analyticsController.Summary, error) {
	args := m.Called(ctx, request)
	if summary, ok := args.Get(0).(*analyticsController.Summary); ok {
		return summary, args.Error(1)
	}
	return nil, args.Error(1)
}
