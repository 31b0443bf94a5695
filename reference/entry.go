// Package reference loads the barcode to sample name mapping that is used to
// relabel the columns of a counts table.
package reference

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// Entry is one row of the reference table.
type Entry struct {
	Barcode    string `csv:"barcode"`
	SampleName string `csv:"sample_names"`
}

// Columns names the reference table headers that hold the barcode and the
// sample name.
type Columns struct {
	Barcode    string
	SampleName string
}

// DefaultColumns are the headers used by the sequencing metadata sheets.
var DefaultColumns = Columns{
	Barcode:    "barcode",
	SampleName: "sample_names",
}

var ErrEmptyReference = errors.New("reference table has no header row")

// MissingColumnError is returned when the reference header lacks one of the
// configured columns.
type MissingColumnError struct {
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("reference table has no %q column (header: %s)", e.Column, strings.Join(e.Header, ", "))
}

// Decode reads every record from r, treating the first as the header, and
// returns one Entry per data row. Rows with a blank barcode are skipped.
func Decode(r gocsv.CSVReader, cols Columns) ([]Entry, error) {
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyReference
	}

	header := records[0]
	barcodeIdx := columnIndex(header, cols.Barcode)
	if barcodeIdx < 0 {
		return nil, &MissingColumnError{Column: cols.Barcode, Header: header}
	}
	sampleIdx := columnIndex(header, cols.SampleName)
	if sampleIdx < 0 {
		return nil, &MissingColumnError{Column: cols.SampleName, Header: header}
	}

	// gocsv binds by header name, so the configured columns take the tag
	// names of Entry and any other column that happens to carry one of
	// those names is hidden from it.
	tagged := make([]string, len(header))
	for i, h := range header {
		switch i {
		case barcodeIdx:
			tagged[i] = "barcode"
		case sampleIdx:
			tagged[i] = "sample_names"
		default:
			tagged[i] = "_" + h
		}
	}

	kept := make([][]string, 0, len(records))
	kept = append(kept, tagged)
	for _, rec := range records[1:] {
		if strings.TrimSpace(cell(rec, barcodeIdx)) == "" {
			continue
		}
		kept = append(kept, rec)
	}

	entries := make([]Entry, 0, len(kept)-1)
	if len(kept) == 1 {
		return entries, nil
	}

	// Spreadsheet rows may be ragged; gocsv leaves missing cells blank.
	if err := gocsv.UnmarshalCSV(&rowsReader{rows: kept}, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// utf8BOM is written at the start of "CSV UTF-8" exports from Excel.
const utf8BOM = "\ufeff"

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		if strings.TrimSpace(h) == name {
			return i
		}
	}

	return -1
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}

	return ""
}

// rowsReader satisfies gocsv.CSVReader over records that are already in
// memory, such as the cells of a spreadsheet.
type rowsReader struct {
	rows [][]string
	pos  int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.pos >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++

	return row, nil
}

func (r *rowsReader) ReadAll() ([][]string, error) {
	rest := r.rows[r.pos:]
	r.pos = len(r.rows)

	return rest, nil
}
