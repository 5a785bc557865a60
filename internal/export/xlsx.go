package export

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/mvandyk/stickypad/internal/model"
)

const sheetName = "Notes"

// xlsxColumns defines the header row and the width of each column.
var xlsxColumns = []struct {
	title string
	width float64
}{
	{"Note", 8},
	{"X", 8},
	{"Y", 8},
	{"Width", 8},
	{"Height", 8},
	{"Pinned", 8},
	{"Text", 60},
}

// ExportExcel writes the note snapshots to an .xlsx workbook with one row
// per note. Geometry columns hold the stored screen coordinates.
func ExportExcel(path string, snaps []model.Snapshot) error {
	if len(snaps) == 0 {
		return errors.New("no notes to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}

	for i, col := range xlsxColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "map header cell")
		}
		if err := f.SetCellValue(sheetName, cell, col.title); err != nil {
			return errors.Wrap(err, "write header cell")
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "map column name")
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return errors.Wrap(err, "set column width")
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(xlsxColumns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return errors.Wrap(err, "style header row")
	}

	for i, snap := range snaps {
		row := i + 2
		values := []interface{}{
			i + 1,
			snap.Geometry.X,
			snap.Geometry.Y,
			snap.Geometry.Width,
			snap.Geometry.Height,
			snap.Pinned,
			snap.Text,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return errors.Wrap(err, "map data cell")
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return errors.Wrap(err, "write data cell")
			}
		}
	}

	return errors.Wrap(f.SaveAs(path), "save workbook")
}
