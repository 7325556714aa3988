package models

import (
	"fmt"
)

// ChecklistRecord is one CAUTI/VAP assessment event. Every checklist
// item has its own nullable boolean column; nil means the item was out
// of the record's assessment scope. Records are never updated after
// creation, only deleted.
type ChecklistRecord struct {
	BaseModel
	AssessmentDate  Date   `gorm:"type:date;not null;index"        json:"assessment_date"`
	BedNo           string `gorm:"column:bed_no;not null"          json:"bed_no"`
	HN              string `gorm:"column:hn;not null;index"        json:"hn"`
	AssessmentScope string `gorm:"column:assessment_scope"         json:"assessment_scope"`

	Cauti1 *bool `gorm:"column:cauti_1" json:"cauti_1"`
	Cauti2 *bool `gorm:"column:cauti_2" json:"cauti_2"`
	Cauti3 *bool `gorm:"column:cauti_3" json:"cauti_3"`
	Cauti4 *bool `gorm:"column:cauti_4" json:"cauti_4"`
	Cauti5 *bool `gorm:"column:cauti_5" json:"cauti_5"`
	Cauti6 *bool `gorm:"column:cauti_6" json:"cauti_6"`

	Vap1 *bool `gorm:"column:vap_1" json:"vap_1"`
	Vap2 *bool `gorm:"column:vap_2" json:"vap_2"`
	Vap3 *bool `gorm:"column:vap_3" json:"vap_3"`
	Vap4 *bool `gorm:"column:vap_4" json:"vap_4"`
	Vap5 *bool `gorm:"column:vap_5" json:"vap_5"`

	Cauti1NoReason *string `gorm:"column:cauti_1_no_reason" json:"cauti_1_no_reason"`
	Vap4NoReason   *string `gorm:"column:vap_4_no_reason"   json:"vap_4_no_reason"`
}

func (ChecklistRecord) TableName() string {
	return "checklist_records"
}

// Item returns the answer for a checklist item key. The switch keeps
// the key set closed: an unknown key is a programming error.
func (r *ChecklistRecord) Item(key string) *bool {
	switch key {
	case "cauti_1":
		return r.Cauti1
	case "cauti_2":
		return r.Cauti2
	case "cauti_3":
		return r.Cauti3
	case "cauti_4":
		return r.Cauti4
	case "cauti_5":
		return r.Cauti5
	case "cauti_6":
		return r.Cauti6
	case "vap_1":
		return r.Vap1
	case "vap_2":
		return r.Vap2
	case "vap_3":
		return r.Vap3
	case "vap_4":
		return r.Vap4
	case "vap_5":
		return r.Vap5
	}
	panic(fmt.Sprintf("unknown checklist item key %q", key))
}

func (r *ChecklistRecord) SetItem(key string, value *bool) {
	switch key {
	case "cauti_1":
		r.Cauti1 = value
	case "cauti_2":
		r.Cauti2 = value
	case "cauti_3":
		r.Cauti3 = value
	case "cauti_4":
		r.Cauti4 = value
	case "cauti_5":
		r.Cauti5 = value
	case "cauti_6":
		r.Cauti6 = value
	case "vap_1":
		r.Vap1 = value
	case "vap_2":
		r.Vap2 = value
	case "vap_3":
		r.Vap3 = value
	case "vap_4":
		r.Vap4 = value
	case "vap_5":
		r.Vap5 = value
	default:
		panic(fmt.Sprintf("unknown checklist item key %q", key))
	}
}

func (r *ChecklistRecord) Reason(key string) *string {
	switch key {
	case "cauti_1_no_reason":
		return r.Cauti1NoReason
	case "vap_4_no_reason":
		return r.Vap4NoReason
	}
	panic(fmt.Sprintf("unknown reason field key %q", key))
}

func (r *ChecklistRecord) SetReason(key string, value *string) {
	switch key {
	case "cauti_1_no_reason":
		r.Cauti1NoReason = value
	case "vap_4_no_reason":
		r.Vap4NoReason = value
	default:
		panic(fmt.Sprintf("unknown reason field key %q", key))
	}
}
