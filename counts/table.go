// Package counts reads and writes tab-delimited abundance tables: one row per
// taxon, an identifier in the first column and one count column per barcode.
package counts

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const (
	// Delim is the character used to delimit both input and output.
	Delim = '\t'

	BufferSize = 4096 * 8
)

var ErrEmptyTable = errors.New("counts table has no header row")

// Table holds a whole counts table in memory. Rows are never modified by
// relabeling.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses a tab-delimited table whose first record is the header. Every
// row must have as many fields as the header.
func Read(r io.Reader) (*Table, error) {
	rdr := csv.NewReader(bufio.NewReaderSize(r, BufferSize))
	rdr.Comma = Delim
	rdr.LazyQuotes = true

	header, err := rdr.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	} else if err != nil {
		return nil, err
	}

	t := &Table{Header: header}
	for {
		row, err := rdr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Write emits the header and then every row, tab-delimited, with no index
// column. A field is quoted only when it contains a tab, a quote or a line
// break, so unquoted input is written back byte for byte.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriterSize(w, BufferSize)

	if err := writeRecord(bw, t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writeRecord(bw, row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeRecord(w *bufio.Writer, record []string) error {
	for i, field := range record {
		if i > 0 {
			if _, err := w.WriteRune(Delim); err != nil {
				return err
			}
		}

		if !strings.ContainsAny(field, "\t\"\r\n") {
			if _, err := w.WriteString(field); err != nil {
				return err
			}
			continue
		}

		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\n")
	return err
}
