package reference

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ReadXLS returns the cells of one sheet of a legacy Excel workbook.
func ReadXLS(r io.ReadSeeker, sheetName string) (records [][]string, err error) {
	// The xls parser panics on malformed workbooks.
	defer func() {
		if rec := recover(); rec != nil {
			records, err = nil, fmt.Errorf("could not parse xls workbook: %v", rec)
		}
	}()

	spreadsheet, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, err
	}

	var sheet *xls.WorkSheet
	for sheetID := 0; sheetID < spreadsheet.NumSheets(); sheetID++ {
		candidate := spreadsheet.GetSheet(sheetID)
		if candidate == nil {
			continue
		}
		if sheetName == "" || candidate.Name == sheetName {
			sheet = candidate
			break
		}
	}
	if sheet == nil {
		return nil, fmt.Errorf("sheet %q was not found in the workbook", sheetName)
	}

	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			records = append(records, nil)
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		records = append(records, cells)
	}

	return records, nil
}

// ReadXLSX returns the cells of one sheet of an Office Open XML workbook.
func ReadXLSX(r io.Reader, sheetName string) ([][]string, error) {
	book, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	if sheetName == "" {
		sheets := book.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	return book.GetRows(sheetName)
}
