// Package sqlite stores the price and order ledgers in a single SQLite
// database file.
//
// Row order is insertion order (rowid), which is the store order of the
// CSV layout.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/etnz/pricebook"
	"github.com/etnz/pricebook/date"
)

const schema = `
CREATE TABLE IF NOT EXISTS prices (
	item TEXT NOT NULL,
	unit TEXT,
	price_a REAL,
	price_b REAL,
	date TEXT NOT NULL,
	uploaded_at TEXT
);

CREATE TABLE IF NOT EXISTS orders (
	order_date TEXT NOT NULL,
	item TEXT NOT NULL,
	unit TEXT,
	quantity TEXT,
	unit_price TEXT,
	subtotal TEXT
);

CREATE INDEX IF NOT EXISTS idx_prices_item ON prices(item);
CREATE INDEX IF NOT EXISTS idx_prices_date ON prices(date);
`

// Store is a price and order store over a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

var (
	_ pricebook.PriceStore = (*Store)(nil)
	_ pricebook.OrderStore = (*Store)(nil)
)

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &pricebook.StoreError{Op: "open", Path: path, Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &pricebook.StoreError{Op: "create", Path: path, Err: err}
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) fail(op string, err error) error {
	return &pricebook.StoreError{Op: op, Path: s.path, Err: err}
}

// LoadPrices returns every price record in insertion order.
func (s *Store) LoadPrices() ([]pricebook.PriceRecord, error) {
	rows, err := s.db.Query(`SELECT item, unit, price_a, price_b, date, uploaded_at FROM prices ORDER BY rowid`)
	if err != nil {
		return nil, s.fail("read", err)
	}
	defer rows.Close()

	var records []pricebook.PriceRecord
	for rows.Next() {
		var r pricebook.PriceRecord
		var day, uploaded sql.NullString
		var unit sql.NullString
		var a, b sql.NullFloat64
		if err := rows.Scan(&r.Item, &unit, &a, &b, &day, &uploaded); err != nil {
			return nil, s.fail("read", err)
		}
		r.Unit, r.PriceA, r.PriceB = unit.String, a.Float64, b.Float64
		// rows of a legacy price file may have no date
		if day.String != "" {
			if r.Date, err = date.Parse(day.String); err != nil {
				return nil, s.fail("read", fmt.Errorf("price of %q: %w", r.Item, err))
			}
		}
		if r.UploadedAt, err = parseTime(uploaded.String); err != nil {
			return nil, s.fail("read", fmt.Errorf("price of %q: %w", r.Item, err))
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("read", err)
	}
	return records, nil
}

// SavePrices replaces every price record within a transaction.
func (s *Store) SavePrices(records []pricebook.PriceRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return s.fail("write", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.Exec(`DELETE FROM prices`); err != nil {
		return s.fail("write", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO prices (item, unit, price_a, price_b, date, uploaded_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return s.fail("write", err)
	}
	defer stmt.Close()
	for _, r := range records {
		if _, err := stmt.Exec(r.Item, r.Unit, r.PriceA, r.PriceB, r.Date.String(), formatTime(r.UploadedAt)); err != nil {
			return s.fail("write", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return s.fail("write", err)
	}
	return nil
}

// LoadOrders returns every order line in insertion order.
func (s *Store) LoadOrders() ([]pricebook.OrderRecord, error) {
	rows, err := s.db.Query(`SELECT order_date, item, unit, quantity, unit_price, subtotal FROM orders ORDER BY rowid`)
	if err != nil {
		return nil, s.fail("read", err)
	}
	defer rows.Close()

	var records []pricebook.OrderRecord
	for rows.Next() {
		var r pricebook.OrderRecord
		var orderedAt string
		var unit sql.NullString
		var qty, price, subtotal sql.NullString
		if err := rows.Scan(&orderedAt, &r.Item, &unit, &qty, &price, &subtotal); err != nil {
			return nil, s.fail("read", err)
		}
		r.Unit = unit.String
		if r.OrderedAt, err = parseTime(orderedAt); err != nil {
			return nil, s.fail("read", err)
		}
		for _, f := range []struct {
			src sql.NullString
			dst *decimal.Decimal
		}{{qty, &r.Quantity}, {price, &r.UnitPrice}, {subtotal, &r.Subtotal}} {
			if !f.src.Valid || f.src.String == "" {
				continue
			}
			if *f.dst, err = decimal.NewFromString(f.src.String); err != nil {
				return nil, s.fail("read", fmt.Errorf("order line %q: %w", r.Item, err))
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail("read", err)
	}
	return records, nil
}

// AppendOrders inserts order lines within a transaction.
func (s *Store) AppendOrders(records []pricebook.OrderRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return s.fail("write", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO orders (order_date, item, unit, quantity, unit_price, subtotal) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return s.fail("write", err)
	}
	defer stmt.Close()
	for _, r := range records {
		_, err := stmt.Exec(formatTime(r.OrderedAt), r.Item, r.Unit, r.Quantity.String(), r.UnitPrice.String(), r.Subtotal.String())
		if err != nil {
			return s.fail("write", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return s.fail("write", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(pricebook.TimestampFormat)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(pricebook.TimestampFormat, s, time.Local)
}
