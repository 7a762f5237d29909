// Command analyze-manifest runs schema inference over a manifest file
// and prints the result: the column mapping with confidences, the
// runners-up, unmatched required fields, and the master waybill found
// in the data.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/demoperez-ux/manifestpro/importer"
	"github.com/demoperez-ux/manifestpro/schema"
	"github.com/demoperez-ux/manifestpro/waybill"
)

func main() {
	sampleSize := flag.Int("sample", 10, "rows to sample per column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-sample N] <manifest.xlsx|manifest.csv>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	columns, err := readManifest(path, *sampleSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := schema.DefaultOptions()
	opts.SampleSize = *sampleSize
	engine := schema.NewEngine(opts)

	mapping, err := engine.Infer(columns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printMapping(mapping)

	if record, ok := resolveWaybill(columns, mapping); ok {
		fmt.Printf("\nMaster waybill: %s (%s, prefix %s)\n",
			record.Normalized, record.CarrierName, record.CarrierPrefix)
	} else {
		fmt.Println("\nMaster waybill: none found")
	}
}

func readManifest(path string, sampleSize int) ([]schema.RawColumn, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return importer.ReadXLSXFile(path, sampleSize)
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return importer.ReadCSV(f, sampleSize)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", path)
	}
}

func printMapping(mapping *schema.SchemaMapping) {
	fields := make([]string, 0, len(mapping.Assignments))
	for field := range mapping.Assignments {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)

	fmt.Println("Inferred mapping:")
	for _, field := range fields {
		id := schema.FieldID(field)
		fmt.Printf("  %-16s <- %-30q confidence %.2f\n",
			field, mapping.Assignments[id], mapping.Confidence[id])
		for _, alt := range mapping.Alternates[id] {
			fmt.Printf("  %-16s    also matched %q (%.2f)\n", "", alt.Header, alt.Score)
		}
	}

	if len(mapping.UnmatchedRequired) > 0 {
		fmt.Println("Unmatched required fields:")
		for _, field := range mapping.UnmatchedRequired {
			fmt.Printf("  %s\n", field)
		}
	}
	for _, warning := range mapping.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
}

func resolveWaybill(columns []schema.RawColumn, mapping *schema.SchemaMapping) (waybill.Record, bool) {
	if header, ok := mapping.Assignments[schema.FieldMasterWaybill]; ok {
		for _, col := range columns {
			if col.Header != header {
				continue
			}
			for _, value := range col.Sample {
				if record := waybill.Validate(value); record.Valid {
					return record, true
				}
			}
		}
	}
	return waybill.ScanColumns(columns)
}
