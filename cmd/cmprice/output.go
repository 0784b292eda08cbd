package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
)

func writeTables(w io.Writer, tables []table, withReference bool) error {
	for i, tbl := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeTable(w, tbl, withReference); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, tbl table, withReference bool) error {
	if _, err := fmt.Fprintf(w, "Maturity %.4g\n", tbl.maturity); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Strike\tCall\n------\t----\n"
	if withReference {
		header = "Strike\tCall\tClosed Form\tAbs Diff\n------\t----\t-----------\t--------\n"
	}
	if _, err := fmt.Fprint(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range tbl.rows {
		var err error
		if withReference {
			_, err = fmt.Fprintf(tw, "%.4f\t%.6f\t%.6f\t%.2e\n", r.strike, r.price, r.reference, math.Abs(r.price-r.reference))
		} else {
			_, err = fmt.Fprintf(tw, "%.4f\t%.6f\n", r.strike, r.price)
		}
		if err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
