package delivery

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes one sheet per subject, stacking that subject's
// section tables with a blank row between them. Tables are the
// rectangular arrays produced by the export transform, keyed and ordered
// per subject.
func WriteWorkbook(path string, subjects []string, tables func(subject string) (map[string][][]string, []string)) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, subject := range subjects {
		sheet := sheetName(subject)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("delivery: workbook sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("delivery: workbook sheet %s: %w", sheet, err)
			}
		}

		byID, order := tables(subject)
		row := 1
		for _, id := range order {
			for _, cells := range byID[id] {
				addr, err := excelize.CoordinatesToCellName(1, row)
				if err != nil {
					return fmt.Errorf("delivery: workbook cell: %w", err)
				}
				values := make([]any, len(cells))
				for j, v := range cells {
					values[j] = v
				}
				if err := f.SetSheetRow(sheet, addr, &values); err != nil {
					return fmt.Errorf("delivery: workbook row: %w", err)
				}
				row++
			}
			row++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("delivery: saving workbook %s: %w", path, err)
	}
	return nil
}

// Sheet names cap at 31 characters in the xlsx format.
func sheetName(subject string) string {
	if len(subject) > 31 {
		return subject[:31]
	}
	return subject
}
