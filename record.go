package pricebook

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/pricebook/date"
	"github.com/shopspring/decimal"
)

// Price store headers.
const (
	ColItem       = "品种"
	ColUnit       = "单位"
	ColPriceA     = "菜篮子价"
	ColPriceB     = "康瑞达价"
	ColDate       = "日期"
	ColUploadedAt = "上传时间"
)

// Order store headers.
const (
	ColOrderDate = "订单日期"
	ColQuantity  = "数量"
	ColUnitPrice = "单价"
	ColSubtotal  = "小计"
)

// PriceColumns is the header of the price store, in file order.
var PriceColumns = []string{ColItem, ColUnit, ColPriceA, ColPriceB, ColDate, ColUploadedAt}

// OrderColumns is the header of the order store, in file order.
var OrderColumns = []string{ColOrderDate, ColItem, ColUnit, ColQuantity, ColUnitPrice, ColSubtotal}

// requiredColumns must be present in every imported sheet.
var requiredColumns = []string{ColItem, ColUnit, ColPriceA, ColPriceB, ColDate}

// columnAliases maps the english names accepted in sheets to the store headers.
var columnAliases = map[string]string{
	"item":        ColItem,
	"unit":        ColUnit,
	"price_a":     ColPriceA,
	"price_b":     ColPriceB,
	"date":        ColDate,
	"uploaded_at": ColUploadedAt,
	"order_date":  ColOrderDate,
	"quantity":    ColQuantity,
	"unit_price":  ColUnitPrice,
	"subtotal":    ColSubtotal,
}

// TimestampFormat is the layout of upload and order times in the stores.
const TimestampFormat = "2006-01-02 15:04:05"

// Channel identifies one of the two price sources tracked for every item.
type Channel int

const (
	// ChannelA is the 菜篮子 price.
	ChannelA Channel = iota
	// ChannelB is the 康瑞达 price, the one orders are placed at.
	ChannelB
)

// Channels lists the channels in display order.
var Channels = []Channel{ChannelA, ChannelB}

// Label returns the supplier name of the channel.
func (c Channel) Label() string {
	switch c {
	case ChannelA:
		return "菜篮子"
	case ChannelB:
		return "康瑞达"
	default:
		return "unknown"
	}
}

// Column returns the store header holding the channel price.
func (c Channel) Column() string {
	switch c {
	case ChannelA:
		return ColPriceA
	case ChannelB:
		return ColPriceB
	default:
		return ""
	}
}

func (c Channel) String() string { return c.Label() }

// PriceRecord is one row of the price ledger: the two prices of an item on a
// business day, as uploaded at some time.
type PriceRecord struct {
	Item       string    `json:"item"`
	Unit       string    `json:"unit"`
	PriceA     float64   `json:"price_a"`
	PriceB     float64   `json:"price_b"`
	Date       date.Date `json:"date"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Price returns the price of the record on channel c.
func (r PriceRecord) Price(c Channel) float64 {
	if c == ChannelB {
		return r.PriceB
	}
	return r.PriceA
}

// byRecency orders records by date, then upload time, most recent first.
func byRecency(a, b PriceRecord) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return b.UploadedAt.Compare(a.UploadedAt)
}

// sortByRecency sorts records in place, most recent first, keeping the
// relative order of records that tie.
func sortByRecency(records []PriceRecord) {
	slices.SortStableFunc(records, byRecency)
}

// byItem orders records by item name.
func byItem(a, b PriceRecord) int { return strings.Compare(a.Item, b.Item) }

// OrderLine is one item of an order.
type OrderLine struct {
	Item      string          `json:"item"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewOrderLine returns a line whose subtotal is quantity × unit price.
func NewOrderLine(item, unit string, quantity, unitPrice decimal.Decimal) OrderLine {
	return OrderLine{
		Item:      item,
		Unit:      unit,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  quantity.Mul(unitPrice),
	}
}

// OrderRecord is one row of the order ledger.
type OrderRecord struct {
	OrderedAt time.Time `json:"order_date"`
	OrderLine
}

// OrderItem is what is recalled of a past order: the item and its quantity.
type OrderItem struct {
	Item     string          `json:"item"`
	Quantity decimal.Decimal `json:"quantity"`
}

// maxDate returns the most recent date in records, or the zero date.
func maxDate(records []PriceRecord) date.Date {
	var last date.Date
	for _, r := range records {
		if r.Date.After(last) {
			last = r.Date
		}
	}
	return last
}

// distinctDates returns the dates present in records, most recent first.
// Records without a date are ignored.
func distinctDates(records []PriceRecord) []date.Date {
	seen := make(map[date.Date]bool)
	dates := make([]date.Date, 0)
	for _, r := range records {
		if !r.Date.IsZero() && !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
	}
	slices.SortFunc(dates, func(a, b date.Date) int { return b.Compare(a) })
	return dates
}

func formatPrice(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) }

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampFormat)
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(TimestampFormat, s, time.Local)
}
