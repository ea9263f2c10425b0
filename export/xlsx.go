package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Rekap"

// WriteXLSX menulis dokumen spreadsheet: judul + ringkasan filter di atas,
// lalu tabel baris. Lebar kolom diset supaya langsung terbaca tanpa diatur.
func WriteXLSX(w io.Writer, f Filter, rows []Row) error {
	x := excelize.NewFile()
	defer x.Close()

	idx, err := x.NewSheet(sheetName)
	if err != nil {
		return err
	}
	x.SetActiveSheet(idx)
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := x.SetCellValue(sheetName, "A1", "Rekap Survei Kepuasan Masyarakat"); err != nil {
		return err
	}
	if err := x.SetCellValue(sheetName, "A2", f.Summary()); err != nil {
		return err
	}

	const headerRow = 4
	for col, h := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return err
		}
		if err := x.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, r := range rows {
		values := []interface{}{r.Index, r.Timestamp, r.Rating, r.Suggestion}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+i)
			if err != nil {
				return err
			}
			if err := x.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	widths := []float64{6, 20, 18, 60}
	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := x.SetColWidth(sheetName, name, name, width); err != nil {
			return err
		}
	}

	if _, err := x.WriteTo(w); err != nil {
		return fmt.Errorf("tulis xlsx: %w", err)
	}
	return nil
}
