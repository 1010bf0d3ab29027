package pricebook

import (
	"log"
	"strings"
	"time"

	"github.com/etnz/pricebook/date"
)

// Table is a parsed rectangular dataset: a header row, and data rows whose
// cells are addressed by column name.
//
// Column names are matched after trimming spaces and a byte order mark, and
// the english aliases (item, unit, price_a, price_b, date, ...) match the
// store headers.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable returns a table with the given header and rows.
func NewTable(header []string, rows ...[]string) *Table {
	return &Table{Header: header, Rows: rows}
}

// tableFromRows uses the first non blank row as the header.
func tableFromRows(rows [][]string) *Table {
	for i, row := range rows {
		if !blank(row) {
			return &Table{Header: row, Rows: rows[i+1:]}
		}
	}
	return &Table{}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// canonicalColumn returns the store header for a sheet column name.
func canonicalColumn(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	if c, ok := columnAliases[strings.ToLower(name)]; ok {
		return c
	}
	return name
}

// Index returns the position of column in the header, or -1.
func (t *Table) Index(column string) int {
	want := canonicalColumn(column)
	for i, h := range t.Header {
		if canonicalColumn(h) == want {
			return i
		}
	}
	return -1
}

// Missing returns the columns absent from the header, in the given order.
func (t *Table) Missing(columns ...string) []string {
	var missing []string
	for _, c := range columns {
		if t.Index(c) < 0 {
			missing = append(missing, c)
		}
	}
	return missing
}

// Value returns the cell of row i in column, or "" when there is none.
func (t *Table) Value(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	return cell(t.Rows[i], t.Index(column))
}

// cell returns row[j], sheets often have ragged rows.
func cell(row []string, j int) string {
	if j < 0 || j >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[j])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// priceIndex holds the position of the price columns in a table.
type priceIndex struct {
	item, unit, a, b, day, uploaded int
}

// priceIndex locates the price columns, the upload time being optional.
func (t *Table) priceIndex() (priceIndex, error) {
	if missing := t.Missing(requiredColumns...); len(missing) > 0 {
		return priceIndex{}, &SchemaError{Missing: missing}
	}
	return priceIndex{
		item:     t.Index(ColItem),
		unit:     t.Index(ColUnit),
		a:        t.Index(ColPriceA),
		b:        t.Index(ColPriceB),
		day:      t.Index(ColDate),
		uploaded: t.Index(ColUploadedAt),
	}, nil
}

// priceRecord reads the cells of row, and returns the date cell unparsed.
func priceRecord(row []string, x priceIndex) (PriceRecord, string) {
	r := PriceRecord{
		Item:   cell(row, x.item),
		Unit:   cell(row, x.unit),
		PriceA: SanitizePrice(cell(row, x.a)),
		PriceB: SanitizePrice(cell(row, x.b)),
	}
	return r, cell(row, x.day)
}

// PriceBatch validates the table and returns its rows as a batch of price
// records uploaded at 'at'.
//
// Either every row is valid and the whole batch is returned, or an error
// is: a *SchemaError when a required column is missing, a *DateFormatError
// on the first unreadable date, ErrEmptyBatch when no row is left.
// Rows without an item are skipped.
func (t *Table) PriceBatch(at time.Time) ([]PriceRecord, error) {
	x, err := t.priceIndex()
	if err != nil {
		return nil, err
	}
	var records []PriceRecord
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		r, raw := priceRecord(row, x)
		if r.Item == "" {
			log.Printf("row %d: skipped, no %s", i+2, ColItem)
			continue
		}
		if r.Date, err = date.ParseLoose(raw); err != nil {
			return nil, &DateFormatError{Row: i + 2, Value: raw, Err: err}
		}
		r.UploadedAt = at
		records = append(records, r)
	}
	if len(records) == 0 {
		return nil, ErrEmptyBatch
	}
	return records, nil
}

// storedPrices reads a table in the price store layout, upload times included.
//
// The store is the whole history, so no row is dropped: a row without an
// item is kept as is, and a date or upload time that cannot be read is
// logged and left zero.
func (t *Table) storedPrices() ([]PriceRecord, error) {
	x, err := t.priceIndex()
	if err != nil {
		return nil, err
	}
	records := make([]PriceRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		r, raw := priceRecord(row, x)
		if raw != "" {
			if r.Date, err = date.ParseLoose(raw); err != nil {
				log.Printf("row %d: %s %q kept without date: %v", i+2, ColDate, raw, err)
			}
		}
		if r.UploadedAt, err = parseTimestamp(cell(row, x.uploaded)); err != nil {
			log.Printf("row %d: %s kept without upload time: %v", i+2, ColUploadedAt, err)
		}
		records = append(records, r)
	}
	return records, nil
}
