// Command gstcalc computes GST totals for a bill described in a JSON file.
// The file carries the line items and, optionally, the two jurisdictions;
// flags and GSTBILL_* environment variables fill in whatever the file omits.
// Usage: gstcalc -in bill.json [-org 29] [-customer 07] [-inclusive] [-check] [-out bill.csv] [-format csv|xlsx]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/export"
	"gstbill/internal/gst"
	"gstbill/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	in := flag.String("in", "", "path to the bill JSON file")
	org := flag.String("org", cfg.Org.Jurisdiction, "organization state code or name")
	customer := flag.String("customer", "", "counterparty state code or name")
	inclusive := flag.Bool("inclusive", cfg.Bill.Inclusive, "line totals already include GST")
	check := flag.Bool("check", false, "run validation rules and fail on rule errors")
	out := flag.String("out", "", "write the computed bill to this file")
	format := flag.String("format", cfg.Export.Format, "export format: csv or xlsx")
	flag.Parse()

	if *in == "" {
		return errors.New("missing -in: path to the bill JSON file")
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("reading bill file: %w", err)
	}
	var input domain.BillInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return fmt.Errorf("parsing bill file: %w", err)
	}
	if len(input.Items) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEmptyBill, *in)
	}

	// Flags override the file; inclusive is always a per-call argument.
	if *org != "" {
		input.OrgJurisdiction = *org
	}
	if *customer != "" {
		input.CounterpartyJurisdiction = *customer
	}
	input.Inclusive = *inclusive

	var result *domain.BillCalculationResult
	var report *validator.Report
	if *check {
		report = validator.NewDefaultEngine().CheckBill(context.Background(), input)
		result = report.Result
		for _, r := range report.Results {
			if !r.Passed {
				log.Printf("gstcalc: [%s] %s", r.Severity, r.Message)
			}
		}
	} else {
		r := gst.AggregateBill(input.Items, input.OrgJurisdiction, input.CounterpartyJurisdiction, input.Inclusive)
		result = &r
	}

	printBill(result)

	if *out != "" {
		if err := writeBill(result, *out, *format); err != nil {
			return err
		}
		log.Printf("gstcalc: bill written to %s", *out)
	}

	if report != nil && report.Status == domain.ValidationStatusInvalid {
		return domain.ErrBillInvalid
	}
	return nil
}

func printBill(res *domain.BillCalculationResult) {
	fmt.Printf("Place of Supply: %s\n", res.PlaceOfSupply)
	for _, key := range sortedKeys(res.Breakdown) {
		entry := res.Breakdown[key]
		fmt.Printf("  %6s%%  taxable %12s  CGST %10s  SGST %10s  IGST %10s\n",
			entry.Rate.String(),
			entry.TaxableAmount.StringFixed(2),
			entry.CGSTAmount.StringFixed(2),
			entry.SGSTAmount.StringFixed(2),
			entry.IGSTAmount.StringFixed(2),
		)
	}
	fmt.Printf("Subtotal:    %s\n", res.Subtotal.StringFixed(2))
	fmt.Printf("Total Tax:   %s\n", res.TotalTax.StringFixed(2))
	fmt.Printf("Grand Total: %s\n", res.GrandTotal.StringFixed(2))
}

func writeBill(res *domain.BillCalculationResult, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch domain.AllowedExportFormats[format] {
	case domain.ExportFormatCSV:
		if _, err := f.Write(export.BOM); err != nil {
			return fmt.Errorf("writing BOM: %w", err)
		}
		w := export.NewWriter(f)
		if err := w.WriteBill(res); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flushing CSV: %w", err)
		}
	case domain.ExportFormatXLSX:
		if err := export.WriteXLSX(res, f); err != nil {
			return fmt.Errorf("writing XLSX: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return nil
}

func sortedKeys(breakdown map[int64]*domain.TaxBreakdownEntry) []int64 {
	keys := make([]int64, 0, len(breakdown))
	for k := range breakdown {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
