package checklistController

import (
	"context"
	"time"

	"cautivap/config"
	"cautivap/internal/apperrors"
	"cautivap/internal/checklist"
	"cautivap/internal/logger"
	. "cautivap/internal/models"
	"cautivap/internal/repositories"
)

type ChecklistController struct {
	recordRepo repositories.ChecklistRecordRepository
	Config     config.Config
	log        logger.Logger
	now        func() time.Time
}

// SubmitRequest is the inbound "submit checklist" body. Assessments
// values stay untyped so a non-boolean answer can be rejected with a
// message naming the key.
type SubmitRequest struct {
	BedNo           string         `json:"bed_no"`
	HN              string         `json:"hn"`
	AssessmentScope *string        `json:"assessment_scope"`
	Assessments     map[string]any `json:"assessments"`
	Cauti1NoReason  *string        `json:"cauti_1_no_reason"`
	Vap4NoReason    *string        `json:"vap_4_no_reason"`
}

func (req *SubmitRequest) reasonValue(key string) *string {
	switch key {
	case "cauti_1_no_reason":
		return req.Cauti1NoReason
	case "vap_4_no_reason":
		return req.Vap4NoReason
	}
	return nil
}

type ChecklistControllerInterface interface {
	Definition() checklist.Definition
	Submit(ctx context.Context, request *SubmitRequest) (*ChecklistRecord, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
) ChecklistControllerInterface {
	return &ChecklistController{
		recordRepo: repos.Record,
		Config:     config,
		log:        logger.New("checklistController"),
		now:        time.Now,
	}
}

func (c *ChecklistController) Definition() checklist.Definition {
	return checklist.GetDefinition()
}

// Submit validates the request, maps it onto a full-width record row
// and inserts it. Items outside the assessment scope are stored as
// explicit nulls so every row has the same shape.
func (c *ChecklistController) Submit(
	ctx context.Context,
	request *SubmitRequest,
) (*ChecklistRecord, error) {
	log := c.log.Function("Submit")

	record, err := c.buildRecord(request)
	if err != nil {
		return nil, err
	}

	if err := c.recordRepo.Create(ctx, record); err != nil {
		return nil, log.Err("failed to persist checklist record", apperrors.Storage(err))
	}

	return record, nil
}

func (c *ChecklistController) buildRecord(request *SubmitRequest) (*ChecklistRecord, error) {
	if request.BedNo == "" || request.HN == "" || request.Assessments == nil {
		return nil, apperrors.Validation("bed_no, hn and assessments are required.")
	}

	scope := checklist.ScopeBoth
	if request.AssessmentScope != nil {
		parsed, ok := checklist.ParseScope(*request.AssessmentScope)
		if !ok {
			return nil, apperrors.Validation("assessment_scope must be cauti, vap, or both.")
		}
		scope = parsed
	}

	requiredKeys := checklist.ScopeKeys(scope)
	required := make(map[string]bool, len(requiredKeys))
	for _, key := range requiredKeys {
		required[key] = true
	}

	record := &ChecklistRecord{
		AssessmentDate:  NewDate(c.now().UTC()),
		BedNo:           request.BedNo,
		HN:              request.HN,
		AssessmentScope: string(scope),
	}

	for _, key := range checklist.Keys() {
		if !required[key] {
			record.SetItem(key, nil)
			continue
		}

		answer, ok := request.Assessments[key].(bool)
		if !ok {
			return nil, apperrors.Validation("Assessment item %s must be boolean.", key)
		}
		value := answer
		record.SetItem(key, &value)
	}

	for _, field := range checklist.ReasonFields() {
		trigger := required[field.TriggerKey] &&
			request.Assessments[field.TriggerKey] == false

		if !trigger {
			record.SetReason(field.Key, nil)
			continue
		}

		supplied := request.reasonValue(field.Key)
		if supplied == nil || !containsOption(field.Options, *supplied) {
			return nil, apperrors.Validation(
				"%s is required when %s is ไม่ใช่.", field.Key, field.TriggerKey,
			)
		}
		reason := *supplied
		record.SetReason(field.Key, &reason)
	}

	return record, nil
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
