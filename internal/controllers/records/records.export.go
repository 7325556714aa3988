package recordsController

import (
	"fmt"

	. "cautivap/internal/models"

	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Records"

// ExportXLSX renders the record set as an Excel workbook with the
// same grid as the CSV export.
func (c *RecordsController) ExportXLSX(records []*ChecklistRecord) (string, []byte, error) {
	log := c.log.Function("ExportXLSX")

	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheetName)
	if err != nil {
		f.Close()
		return "", nil, log.Err("failed to create sheet", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return "", nil, log.Err("failed to create header style", err)
	}

	columns := ExportColumns()
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return "", nil, log.Err("failed to compute header cell", err)
		}
		if err := f.SetCellValue(exportSheetName, cell, name); err != nil {
			f.Close()
			return "", nil, log.Err("failed to write header cell", err)
		}
		if err := f.SetCellStyle(exportSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return "", nil, log.Err("failed to style header cell", err)
		}
	}

	for row, record := range records {
		for col, column := range columns {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return "", nil, log.Err("failed to compute cell", err)
			}
			if err := f.SetCellValue(exportSheetName, cell, exportCell(record, column)); err != nil {
				f.Close()
				return "", nil, log.Err("failed to write cell", err)
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return "", nil, log.Err("failed to serialize workbook", err)
	}
	if err := f.Close(); err != nil {
		log.Warn("failed to close workbook", "error", err)
	}

	filename := fmt.Sprintf("cauti-vap-records-%d.xlsx", c.now().UnixMilli())
	return filename, buffer.Bytes(), nil
}
