// Package xlsxexport выгрузка табличных данных в xlsx
package xlsxexport

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType MIME-тип xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrWrite = errors.New("xlsxexport: failed to write workbook")

// Table один лист: фиксированные заголовки и строки значений
type Table struct {
	Sheet   string
	Headers []string
	Rows    [][]interface{}
	// ColumnWidths ширина колонок по порядку; 0 - по умолчанию
	ColumnWidths []float64
}

// Write пишет книгу с одним листом в w
func Write(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrWrite, err)
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("%w: stream writer: %v", ErrWrite, err)
	}

	for i, width := range t.ColumnWidths {
		if width <= 0 {
			continue
		}
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return fmt.Errorf("%w: column width: %v", ErrWrite, err)
		}
	}

	boldID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: header style: %v", ErrWrite, err)
	}

	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = excelize.Cell{StyleID: boldID, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("%w: header row: %v", ErrWrite, err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrWrite, i, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("%w: row %d: %v", ErrWrite, i, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrWrite, err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
