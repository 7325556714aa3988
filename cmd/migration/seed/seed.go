package seed

import (
	"cautivap/config"
	"cautivap/internal/logger"
	. "cautivap/internal/models"

	"gorm.io/gorm"
)

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	patients := []Patient{
		{BedNo: "1", HN: "650001234", PatientName: "นายสมชาย ใจดี"},
		{BedNo: "2", HN: "650002345", PatientName: "นางสมหญิง รักเรียน"},
		{BedNo: "3", HN: "650003456", PatientName: "นายประเสริฐ มั่นคง"},
		{BedNo: "4", HN: "650004567", PatientName: "นางสาววิภา แสงทอง"},
		{BedNo: "5", HN: "650005678", PatientName: "นายอนันต์ ศรีสุข"},
	}

	for _, patient := range patients {
		var existing Patient
		if err := db.First(&existing, "bed_no = ?", patient.BedNo).Error; err == nil {
			log.Info("Patient already exists", "bed", patient.BedNo)
			continue
		}
		log.Info("Seeding patient", "bed", patient.BedNo, "hn", patient.HN)
		if err := db.Create(&patient).Error; err != nil {
			log.Er("failed to create patient", err, "bed", patient.BedNo)
		}
	}

	return nil
}
