// relabelcounts renames the barcode columns of a tab-delimited abundance table
// (e.g., the emu combined tax_id counts) to the sample names listed in a
// metadata spreadsheet, and writes the result as a new tab-delimited file.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/carbocation/otutable"
	"github.com/carbocation/otutable/compileinfo"
	"github.com/carbocation/otutable/reference"
	"github.com/carbocation/otutable/relabel"
	"github.com/carbocation/pfx"
)

func main() {
	compileinfo.PrintToStdErr()

	var cfg relabel.Config
	var strict bool

	flag.StringVar(&cfg.CountsPath, "counts", "", "Path to the tab-delimited counts table. First column is the row identifier, the rest are barcodes. May be gzipped and may be a gs:// path.")
	flag.StringVar(&cfg.ReferencePath, "reference", "", "Path to the reference table (.xlsx, .xls, .csv or .tsv) that maps barcodes to sample names.")
	flag.StringVar(&cfg.OutputPath, "out", "", "Path to write the relabeled tab-delimited table. May be a gs:// path.")
	flag.StringVar(&cfg.Columns.Barcode, "barcode-col", reference.DefaultColumns.Barcode, "Reference table column holding the barcodes.")
	flag.StringVar(&cfg.Columns.SampleName, "sample-col", reference.DefaultColumns.SampleName, "Reference table column holding the sample names.")
	flag.StringVar(&cfg.Sheet, "sheet", "", "Name of the worksheet to read from a spreadsheet reference. Defaults to the first sheet.")
	flag.StringVar(&cfg.IdentifierHeader, "id-header", "", "If set, the header of the first (identifier) column is replaced with this value, e.g., tax_id.")
	flag.BoolVar(&strict, "strict", false, "Fail if a barcode is mapped to more than one sample name. By default, the last mapping wins.")
	flag.Parse()

	if cfg.CountsPath == "" || cfg.ReferencePath == "" || cfg.OutputPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if strict {
		cfg.Duplicates = reference.RejectConflicts
	}

	ctx := context.Background()

	var client *storage.Client
	if otutable.IsGoogleStoragePath(cfg.CountsPath) || otutable.IsGoogleStoragePath(cfg.ReferencePath) || otutable.IsGoogleStoragePath(cfg.OutputPath) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		defer client.Close()
	}

	if _, err := relabel.Run(ctx, cfg, client); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}
