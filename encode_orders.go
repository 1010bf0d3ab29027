package pricebook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeOrders reads an order store. An empty input holds no record.
func DecodeOrders(r io.Reader) ([]OrderRecord, error) {
	t, err := ReadCSVTable(r)
	if err != nil {
		return nil, err
	}
	if len(t.Header) == 0 {
		return nil, nil
	}
	if missing := t.Missing(OrderColumns...); len(missing) > 0 {
		return nil, fmt.Errorf("invalid order store: %w", &SchemaError{Missing: missing})
	}

	records := make([]OrderRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		var rec OrderRecord
		var err error
		if rec.OrderedAt, err = parseTimestamp(t.Value(i, ColOrderDate)); err != nil {
			return nil, fmt.Errorf("invalid order store: row %d: %w", i+2, err)
		}
		rec.Item = t.Value(i, ColItem)
		rec.Unit = t.Value(i, ColUnit)
		for _, f := range []struct {
			column string
			dst    *decimal.Decimal
		}{
			{ColQuantity, &rec.Quantity},
			{ColUnitPrice, &rec.UnitPrice},
			{ColSubtotal, &rec.Subtotal},
		} {
			if *f.dst, err = parseDecimal(t.Value(i, f.column)); err != nil {
				return nil, fmt.Errorf("invalid order store: row %d: %s: %w", i+2, f.column, err)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeOrders writes records in the order store format. The header is
// written only when header is true, for appending to an existing store.
func EncodeOrders(w io.Writer, records []OrderRecord, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(OrderColumns); err != nil {
			return fmt.Errorf("cannot write order header: %w", err)
		}
	}
	for _, r := range records {
		row := []string{
			formatTimestamp(r.OrderedAt),
			r.Item,
			r.Unit,
			r.Quantity.String(),
			r.UnitPrice.String(),
			r.Subtotal.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write order line %q: %w", r.Item, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
