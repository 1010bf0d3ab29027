package pricebook

import (
	"encoding/csv"
	"fmt"
	"io"
)

// this file contains the CSV format of the price store.
// It is the format the spreadsheet users already know: one header row with
// the chinese column names, one row per record, UTF-8 text.

// DecodePrices reads a price store. Columns are found by header name, so the
// five column files written before upload times were recorded still load.
// An empty input holds no record.
func DecodePrices(r io.Reader) ([]PriceRecord, error) {
	t, err := ReadCSVTable(r)
	if err != nil {
		return nil, err
	}
	if len(t.Header) == 0 {
		return nil, nil
	}
	records, err := t.storedPrices()
	if err != nil {
		return nil, fmt.Errorf("invalid price store: %w", err)
	}
	return records, nil
}

// EncodePrices writes records in the price store format, header included.
func EncodePrices(w io.Writer, records []PriceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PriceColumns); err != nil {
		return fmt.Errorf("cannot write price header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Item,
			r.Unit,
			formatPrice(r.PriceA),
			formatPrice(r.PriceB),
			r.Date.String(),
			formatTimestamp(r.UploadedAt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write price of %q on %s: %w", r.Item, r.Date, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
