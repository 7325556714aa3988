package models

// Patient is a read-only row from the ward census table.
type Patient struct {
	BedNo       string `gorm:"column:bed_no;primaryKey" json:"bed_no"`
	HN          string `gorm:"column:hn"                json:"hn"`
	PatientName string `gorm:"column:patient_name"      json:"patient_name"`
}

func (Patient) TableName() string {
	return "patients"
}
