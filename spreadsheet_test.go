package pricebook

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/etnz/pricebook/date"
)

func TestReadXLSXTable(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{ColItem, ColUnit, ColPriceA, ColPriceB, ColDate},
		{"白菜", "斤", 3.5, 4, 45299},
		{"土豆", "斤", "1.2元", 1.5, "2024/1/8"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	tbl, err := ReadTable("prices.xlsx", &buf)
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	records, err := tbl.PriceBatch(testTime)
	if err != nil {
		t.Fatalf("PriceBatch() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("PriceBatch() = %+v, want 2 records", records)
	}
	for _, r := range records {
		if r.Date != date.New(2024, 1, 8) {
			t.Errorf("%s date = %s, want 2024-01-08", r.Item, r.Date)
		}
	}
	if records[0].PriceA != 3.5 || records[1].PriceA != 1.2 {
		t.Errorf("PriceBatch() prices = %v and %v, want 3.5 and 1.2", records[0].PriceA, records[1].PriceA)
	}
}

func TestExportOrder(t *testing.T) {
	q := &Quote{
		PriceDate: date.New(2024, 1, 8),
		Lines: []OrderLine{
			NewOrderLine("白菜", "斤", d("10"), d("4.4")),
			NewOrderLine("豆腐", "块", d("2"), d("2.5")),
		},
	}
	var buf bytes.Buffer
	if err := ExportOrder(&buf, q); err != nil {
		t.Fatalf("ExportOrder() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("cannot read exported workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != 1 || got[0] != OrderSheet {
		t.Errorf("sheets = %q, want [%s]", got, OrderSheet)
	}
	tests := []struct {
		cell string
		want string
	}{
		{"A1", "价格日期：2024-01-08"},
		{"A3", ColItem},
		{"E3", ColSubtotal},
		{"A4", "白菜"},
		{"C5", "块"},
		{"D6", "总计："},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(OrderSheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error = %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("cell %s = %q, want %q", tt.cell, got, tt.want)
		}
	}
	total, err := f.GetCellValue(OrderSheet, "E6", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatal(err)
	}
	if total != "49" {
		t.Errorf("total = %q, want 49", total)
	}

	if err := ExportOrder(&buf, &Quote{}); err == nil {
		t.Errorf("ExportOrder() of an empty quote succeeded")
	}
}
