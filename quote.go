package pricebook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/etnz/pricebook/date"
)

// UnknownUnit is the unit of a custom priced item whose unit is not given.
const UnknownUnit = "未知"

// OrderRequest is an item to order, optionally at a custom price.
type OrderRequest struct {
	Item        string
	Quantity    decimal.Decimal
	CustomPrice *decimal.Decimal
	CustomUnit  string
}

// ParseOrderRequest parses "item=quantity", "item=quantity@price" or
// "item=quantity@price/unit".
func ParseOrderRequest(s string) (OrderRequest, error) {
	var req OrderRequest
	item, rest, ok := strings.Cut(s, "=")
	req.Item = strings.TrimSpace(item)
	if !ok || req.Item == "" {
		return req, fmt.Errorf("invalid order line %q, want item=quantity[@price[/unit]]", s)
	}
	qty, price, custom := strings.Cut(rest, "@")
	var err error
	if req.Quantity, err = decimal.NewFromString(strings.TrimSpace(qty)); err != nil {
		return req, fmt.Errorf("invalid quantity in %q: %w", s, err)
	}
	if custom {
		price, unit, _ := strings.Cut(price, "/")
		p, err := decimal.NewFromString(strings.TrimSpace(price))
		if err != nil {
			return req, fmt.Errorf("invalid price in %q: %w", s, err)
		}
		req.CustomPrice = &p
		req.CustomUnit = strings.TrimSpace(unit)
	}
	return req, nil
}

// OrderRequests reads order requests from a sheet with an item and a
// quantity column, and optional unit price and unit columns.
func OrderRequests(t *Table) ([]OrderRequest, error) {
	if missing := t.Missing(ColItem, ColQuantity); len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	hasPrice := t.Index(ColUnitPrice) >= 0
	var requests []OrderRequest
	var errs []error
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		req := OrderRequest{Item: t.Value(i, ColItem), CustomUnit: t.Value(i, ColUnit)}
		if req.Item == "" {
			continue
		}
		var err error
		if req.Quantity, err = decimal.NewFromString(t.Value(i, ColQuantity)); err != nil {
			errs = append(errs, fmt.Errorf("row %d: invalid %s: %w", i+2, ColQuantity, err))
			continue
		}
		if raw := t.Value(i, ColUnitPrice); hasPrice && raw != "" {
			p, err := decimal.NewFromString(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("row %d: invalid %s: %w", i+2, ColUnitPrice, err))
				continue
			}
			req.CustomPrice = &p
		}
		requests = append(requests, req)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return requests, nil
}

// Quote is an order priced against the latest prices.
type Quote struct {
	PriceDate date.Date
	Lines     []OrderLine
	// Missing lists the requested items without a price.
	Missing []string
}

// Total returns the sum of the line subtotals.
func (q *Quote) Total() decimal.Decimal { return total(q.Lines) }

// QuoteOrder prices requests with the channel B prices of the most recent
// date. A custom price overrides the recorded one.
//
// Requests with a zero quantity are dropped, a negative quantity is an
// error. Items without a recorded nor a custom price are listed in Missing.
func (l *Ledger) QuoteOrder(requests []OrderRequest) (*Quote, error) {
	latest, err := l.Latest()
	if err != nil && !errors.Is(err, ErrNoData) {
		return nil, err
	}
	prices := make(map[string]PriceRecord)
	for _, r := range latest {
		if _, exists := prices[r.Item]; !exists {
			prices[r.Item] = r
		}
	}

	q := &Quote{PriceDate: maxDate(latest)}
	for _, req := range requests {
		switch {
		case req.Quantity.IsNegative():
			return nil, fmt.Errorf("invalid quantity %s for %q", req.Quantity, req.Item)
		case req.Quantity.IsZero():
			continue
		}
		if req.CustomPrice != nil {
			unit := req.CustomUnit
			if unit == "" {
				unit = UnknownUnit
			}
			q.Lines = append(q.Lines, NewOrderLine(req.Item, unit, req.Quantity, *req.CustomPrice))
			continue
		}
		r, ok := prices[req.Item]
		if !ok {
			q.Missing = append(q.Missing, req.Item)
			continue
		}
		q.Lines = append(q.Lines, NewOrderLine(r.Item, r.Unit, req.Quantity, decimal.NewFromFloat(r.PriceB)))
	}
	return q, nil
}
