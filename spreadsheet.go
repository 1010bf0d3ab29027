package pricebook

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// OrderSheet is the name of the sheet written by ExportOrder.
const OrderSheet = "订单明细"

// ReadXLSXTable reads the first sheet of an Office Open XML workbook.
//
// Cells are read raw: dates are spreadsheet serial numbers, handled by
// date.ParseLoose.
func ReadXLSXTable(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("cannot close workbook: %v", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheet")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows), nil
}

// ExportOrder writes the quote as a workbook with a single sheet: the price
// date, a header row, one row per line and the total.
func ExportOrder(w io.Writer, q *Quote) error {
	if q == nil || len(q.Lines) == 0 {
		return ErrEmptyOrder
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OrderSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	amount, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	// set collects the first error, so that the layout reads top down.
	var werr error
	set := func(cell string, value any) {
		if werr == nil {
			werr = f.SetCellValue(OrderSheet, cell, value)
		}
	}
	style := func(from, to string, id int) {
		if werr == nil {
			werr = f.SetCellStyle(OrderSheet, from, to, id)
		}
	}

	set("A1", "价格日期："+q.PriceDate.String())
	style("A1", "A1", bold)
	header := []string{ColItem, ColQuantity, ColUnit, ColUnitPrice, ColSubtotal}
	if werr == nil {
		werr = f.SetSheetRow(OrderSheet, "A3", &header)
	}
	style("A3", "E3", bold)

	row := 4
	for _, l := range q.Lines {
		set(fmt.Sprintf("A%d", row), l.Item)
		set(fmt.Sprintf("B%d", row), l.Quantity.InexactFloat64())
		set(fmt.Sprintf("C%d", row), l.Unit)
		set(fmt.Sprintf("D%d", row), l.UnitPrice.InexactFloat64())
		set(fmt.Sprintf("E%d", row), l.Subtotal.InexactFloat64())
		style(fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), amount)
		row++
	}
	set(fmt.Sprintf("D%d", row), "总计：")
	set(fmt.Sprintf("E%d", row), q.Total().InexactFloat64())
	style(fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), bold)
	style(fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), amount)
	if werr != nil {
		return werr
	}

	for _, c := range []struct {
		from, to string
		width    float64
	}{{"A", "A", 20}, {"B", "B", 10}, {"C", "C", 8}, {"D", "E", 12}} {
		if err := f.SetColWidth(OrderSheet, c.from, c.to, c.width); err != nil {
			return err
		}
	}
	return f.Write(w)
}
