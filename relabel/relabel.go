// Package relabel renames the barcode columns of a counts table to sample
// names taken from a reference table, and writes the result.
package relabel

import (
	"context"
	"log"

	"cloud.google.com/go/storage"
	"github.com/carbocation/otutable"
	"github.com/carbocation/otutable/counts"
	"github.com/carbocation/otutable/reference"
	"github.com/carbocation/pfx"
)

type Config struct {
	CountsPath    string
	ReferencePath string
	OutputPath    string

	// Columns of the reference table. The zero value means
	// reference.DefaultColumns.
	Columns reference.Columns

	// Sheet of the reference workbook. Empty means the first sheet.
	Sheet string

	Duplicates reference.DuplicatePolicy

	// IdentifierHeader, if set, replaces the header of the first column.
	IdentifierHeader string
}

// Result describes a completed run.
type Result struct {
	Rows     int
	Columns  int
	Mapped   int
	Unmapped []string
}

// Run performs the relabeling described by cfg. The Google Storage client may
// be nil if no path is a gs:// path.
func Run(ctx context.Context, cfg Config, client *storage.Client) (Result, error) {
	var result Result

	countsPath, err := otutable.ExpandHome(cfg.CountsPath)
	if err != nil {
		return result, err
	}
	referencePath, err := otutable.ExpandHome(cfg.ReferencePath)
	if err != nil {
		return result, err
	}
	outputPath, err := otutable.ExpandHome(cfg.OutputPath)
	if err != nil {
		return result, err
	}

	// Nothing else is touched until the counts file is known to exist.
	exists, err := otutable.Exists(ctx, countsPath, client)
	if err != nil {
		return result, &ReadError{Path: countsPath, Err: err}
	}
	if !exists {
		return result, &MissingInputError{Path: countsPath}
	}

	log.Printf("Loading reference table %s\n", referencePath)
	entries, err := reference.Load(ctx, referencePath, reference.LoadOptions{
		Columns: cfg.Columns,
		Sheet:   cfg.Sheet,
		Client:  client,
	})
	if err != nil {
		return result, &ReadError{Path: referencePath, Err: err}
	}

	rename, err := reference.BuildRenameMap(entries, cfg.Duplicates)
	if err != nil {
		return result, &ReadError{Path: referencePath, Err: err}
	}
	log.Println("Loaded", len(rename), "barcodes from", len(entries), "reference rows")

	log.Printf("Loading counts table %s\n", countsPath)
	table, err := readCounts(ctx, countsPath, client)
	if err != nil {
		return result, &ReadError{Path: countsPath, Err: err}
	}

	stats := table.Relabel(rename)
	if cfg.IdentifierHeader != "" && len(table.Header) > 0 {
		table.Header[0] = cfg.IdentifierHeader
	}

	result = Result{
		Rows:     len(table.Rows),
		Columns:  len(table.Header),
		Mapped:   stats.Mapped,
		Unmapped: stats.Unmapped,
	}

	if len(stats.Unmapped) > 0 {
		log.Println(len(stats.Unmapped), "column(s) had no sample name and were left as-is:", stats.Unmapped)
	}

	if err := writeCounts(ctx, outputPath, table, client); err != nil {
		return result, &WriteError{Path: outputPath, Err: err}
	}
	log.Printf("Wrote %d rows with %d relabeled column(s) to %s\n", result.Rows, result.Mapped, outputPath)

	return result, nil
}

func readCounts(ctx context.Context, path string, client *storage.Client) (*counts.Table, error) {
	f, err := otutable.Open(ctx, path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, dt, err := otutable.MaybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	if dt != otutable.DataTypeNoCompression {
		log.Printf("Detected %s compression on %s\n", dt, path)
	}

	return counts.Read(r)
}

func writeCounts(ctx context.Context, path string, table *counts.Table, client *storage.Client) (err error) {
	w, err := otutable.Create(ctx, path, client)
	if err != nil {
		return err
	}
	defer func() {
		// For Google Storage, Close commits the object.
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return table.Write(w)
}
