package analyticsController

import (
	"context"

	"cautivap/config"
	"cautivap/internal/apperrors"
	"cautivap/internal/checklist"
	"cautivap/internal/logger"
	. "cautivap/internal/models"
	"cautivap/internal/repositories"

	"github.com/shopspring/decimal"
)

type AnalyticsController struct {
	recordRepo repositories.ChecklistRecordRepository
	Config     config.Config
	log        logger.Logger
}

type Request struct {
	StartDate string
	EndDate   string
	Section   string
}

type ItemSummary struct {
	Key           string  `json:"key"`
	Text          string  `json:"text"`
	YesCount      int     `json:"yesCount"`
	NoCount       int     `json:"noCount"`
	AnsweredCount int     `json:"answeredCount"`
	TotalRecords  int     `json:"totalRecords"`
	YesPercent    float64 `json:"yesPercent"`
	NoPercent     float64 `json:"noPercent"`
}

type OptionSummary struct {
	Value             string  `json:"value"`
	Count             int     `json:"count"`
	PercentOfNoCases  float64 `json:"percentOfNoCases"`
	PercentOfAllCases float64 `json:"percentOfAllCases"`
}

type DropdownSummary struct {
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	TriggerKey   string          `json:"triggerKey"`
	TotalNoCases int             `json:"totalNoCases"`
	TotalRecords int             `json:"totalRecords"`
	Options      []OptionSummary `json:"options"`
}

type Summary struct {
	StartDate         *string           `json:"startDate"`
	EndDate           *string           `json:"endDate"`
	Section           string            `json:"section"`
	TotalRecords      int               `json:"totalRecords"`
	MostProblematic   *ItemSummary      `json:"mostProblematic"`
	Items             []ItemSummary     `json:"items"`
	DropdownSummaries []DropdownSummary `json:"dropdownSummaries"`
}

type AnalyticsControllerInterface interface {
	Aggregate(ctx context.Context, request Request) (*Summary, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
) AnalyticsControllerInterface {
	return &AnalyticsController{
		recordRepo: repos.Record,
		Config:     config,
		log:        logger.New("analyticsController"),
	}
}

// Aggregate scans the records in range once and produces per-item
// yes/no counts and percentages plus reason-option breakdowns.
func (c *AnalyticsController) Aggregate(
	ctx context.Context,
	request Request,
) (*Summary, error) {
	log := c.log.Function("Aggregate")

	if err := validateBound(request.StartDate, "startDate"); err != nil {
		return nil, err
	}
	if err := validateBound(request.EndDate, "endDate"); err != nil {
		return nil, err
	}

	section := checklist.SectionAll
	switch checklist.Section(request.Section) {
	case checklist.SectionCauti:
		section = checklist.SectionCauti
	case checklist.SectionVap:
		section = checklist.SectionVap
	}

	keys := checklist.SectionKeys(section)
	reasonFields := checklist.ReasonFieldsForSection(section)

	columns := append([]string{"assessment_date"}, keys...)
	for _, field := range reasonFields {
		columns = append(columns, field.Key)
	}

	records, err := c.recordRepo.ListRange(ctx, request.StartDate, request.EndDate, columns)
	if err != nil {
		return nil, log.Err("failed to fetch records for analytics", apperrors.Storage(err))
	}

	totalRecords := len(records)

	items := make([]ItemSummary, 0, len(keys))
	for _, key := range keys {
		summary := ItemSummary{
			Key:          key,
			Text:         checklist.ItemText(key),
			TotalRecords: totalRecords,
		}

		for _, record := range records {
			value := record.Item(key)
			if value == nil {
				continue
			}
			summary.AnsweredCount++
			if *value {
				summary.YesCount++
			} else {
				summary.NoCount++
			}
		}

		summary.YesPercent = percent(summary.YesCount, summary.AnsweredCount)
		summary.NoPercent = percent(summary.NoCount, summary.AnsweredCount)
		items = append(items, summary)
	}

	// Left fold with strict > so ties keep the earliest item in
	// definition order.
	var mostProblematic *ItemSummary
	for i := range items {
		if mostProblematic == nil || items[i].NoCount > mostProblematic.NoCount {
			mostProblematic = &items[i]
		}
	}

	dropdownSummaries := make([]DropdownSummary, 0, len(reasonFields))
	for _, field := range reasonFields {
		var noCaseRecords []*ChecklistRecord
		for _, record := range records {
			if value := record.Item(field.TriggerKey); value != nil && !*value {
				noCaseRecords = append(noCaseRecords, record)
			}
		}
		totalNoCases := len(noCaseRecords)

		options := make([]OptionSummary, 0, len(field.Options))
		for _, option := range field.Options {
			count := 0
			for _, record := range noCaseRecords {
				if reason := record.Reason(field.Key); reason != nil && *reason == option {
					count++
				}
			}
			options = append(options, OptionSummary{
				Value:             option,
				Count:             count,
				PercentOfNoCases:  percent(count, totalNoCases),
				PercentOfAllCases: percent(count, totalRecords),
			})
		}

		dropdownSummaries = append(dropdownSummaries, DropdownSummary{
			Key:          field.Key,
			Label:        field.Label,
			TriggerKey:   field.TriggerKey,
			TotalNoCases: totalNoCases,
			TotalRecords: totalRecords,
			Options:      options,
		})
	}

	return &Summary{
		StartDate:         optionalString(request.StartDate),
		EndDate:           optionalString(request.EndDate),
		Section:           string(section),
		TotalRecords:      totalRecords,
		MostProblematic:   mostProblematic,
		Items:             items,
		DropdownSummaries: dropdownSummaries,
	}, nil
}

// percent is count/total*100 rounded to 2 decimals, 0 for an empty
// total. Decimal arithmetic keeps the rounding exact.
func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(count) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		InexactFloat64()
}

func validateBound(value, name string) error {
	if value == "" {
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return apperrors.Validation("%s must be a YYYY-MM-DD date.", name)
	}
	return nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
