package reference

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/otutable"
)

// Format is the on-disk layout of a reference table.
type Format int

const (
	FormatDelimited Format = iota
	FormatXLS
	FormatXLSX
)

// LoadOptions control how a reference table is located and read.
type LoadOptions struct {
	Columns Columns

	// Sheet selects a worksheet by name. Empty means the first sheet.
	Sheet string

	// Client is only needed for gs:// paths.
	Client *storage.Client
}

// FormatFromPath picks the reader for a reference file by its extension. The
// returned delimiter is zero when it must be detected from the content.
func FormatFromPath(path string) (Format, rune) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return FormatXLS, 0
	case ".xlsx", ".xlsm":
		return FormatXLSX, 0
	case ".csv":
		return FormatDelimited, ','
	case ".tsv", ".tab", ".txt":
		return FormatDelimited, '\t'
	}

	return FormatDelimited, 0
}

// Load reads the reference table at path and returns its entries in file
// order.
func Load(ctx context.Context, path string, opts LoadOptions) ([]Entry, error) {
	cols := opts.Columns
	if cols == (Columns{}) {
		cols = DefaultColumns
	}

	f, err := otutable.Open(ctx, path, opts.Client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Reference tables are small, and the spreadsheet readers need random
	// access, so the whole file is buffered.
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	format, delim := FormatFromPath(path)

	var records [][]string
	switch format {
	case FormatXLS:
		records, err = ReadXLS(bytes.NewReader(data), opts.Sheet)
	case FormatXLSX:
		records, err = ReadXLSX(bytes.NewReader(data), opts.Sheet)
	default:
		if delim == 0 {
			delim = otutable.DetermineDelimiter(bytes.NewReader(data), '\t')
			log.Printf("Determined reference delimiter to be %q\n", string(delim))
		}
		records, err = readDelimited(bytes.NewReader(data), delim)
	}
	if err != nil {
		return nil, err
	}

	entries, err := Decode(&rowsReader{rows: records}, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

func readDelimited(r io.Reader, delim rune) ([][]string, error) {
	rdr := csv.NewReader(r)
	rdr.Comma = delim
	rdr.LazyQuotes = true
	// Metadata sheets exported from spreadsheets often have ragged rows.
	rdr.FieldsPerRecord = -1

	return rdr.ReadAll()
}
