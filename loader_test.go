package pricebook

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/pricebook/date"
)

func TestFileStorePrices(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "data", "prices.csv"), filepath.Join(dir, "data", "orders.csv"))

	got, err := store.LoadPrices()
	if err != nil || len(got) != 0 {
		t.Fatalf("LoadPrices() on absent file = %v, %v, want empty", got, err)
	}

	at := time.Date(2024, 1, 8, 9, 30, 15, 0, time.Local)
	want := []PriceRecord{
		{Item: "白菜, 大", Unit: "斤", PriceA: 3.5, PriceB: 4.25, Date: date.New(2024, 1, 8), UploadedAt: at},
		{Item: "土豆", Unit: "斤", PriceA: 1, PriceB: 0, Date: date.New(2024, 1, 1)},
	}
	if err := store.SavePrices(want); err != nil {
		t.Fatalf("SavePrices() error = %v", err)
	}
	got, err = store.LoadPrices()
	if err != nil {
		t.Fatalf("LoadPrices() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("LoadPrices() = %+v, want %+v", got, want)
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Item != w.Item || g.Unit != w.Unit || g.PriceA != w.PriceA || g.PriceB != w.PriceB || g.Date != w.Date || !g.UploadedAt.Equal(w.UploadedAt) {
			t.Errorf("LoadPrices()[%d] = %+v, want %+v", i, g, w)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(store.PricesFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("store folder holds %d files, want only the store", len(entries))
	}
}

func TestFileStoreLegacyPrices(t *testing.T) {
	file := filepath.Join(t.TempDir(), "food_prices.csv")
	legacy := "品种,单位,菜篮子价,康瑞达价,日期\n白菜,斤,3.5,4.0,2024-01-01\n"
	if err := os.WriteFile(file, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := NewFileStore(file, "").LoadPrices()
	if err != nil {
		t.Fatalf("LoadPrices() error = %v", err)
	}
	if len(got) != 1 || got[0].PriceB != 4 || !got[0].UploadedAt.IsZero() {
		t.Errorf("LoadPrices() = %+v, want one record without upload time", got)
	}
}

func TestFileStoreKeepsIncompleteRows(t *testing.T) {
	file := filepath.Join(t.TempDir(), "food_prices.csv")
	legacy := "品种,单位,菜篮子价,康瑞达价,日期\n" +
		"白菜,斤,3.5,4,2024-01-01\n" +
		",斤,1,1,2024-01-01\n" +
		"萝卜,斤,2,2,\n"
	if err := os.WriteFile(file, []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(file, "")

	got, err := store.LoadPrices()
	if err != nil {
		t.Fatalf("LoadPrices() error = %v", err)
	}
	if len(got) != 3 || got[1].Item != "" || !got[2].Date.IsZero() {
		t.Fatalf("LoadPrices() = %+v, want the three rows, one without item and one without date", got)
	}

	l := NewLedger(store, store)
	latest, err := l.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(latest) != 2 || latest[1].Item != "白菜" {
		t.Errorf("Latest() = %+v, want both rows of 2024-01-01", latest)
	}
	if dates, _ := l.Dates(); len(dates) != 1 || dates[0] != date.New(2024, 1, 1) {
		t.Errorf("Dates() = %v, want only 2024-01-01", dates)
	}
	if items, _ := l.Items(); strings.Join(items, ",") != "白菜,萝卜" {
		t.Errorf("Items() = %q, want the named items", items)
	}

	if _, err := l.Import(priceTable([]string{"白菜", "斤", "4", "4.4", "2024-01-08"})); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 5 {
		t.Fatalf("store holds %d lines after import, want 5:\n%s", len(lines), content)
	}
	for _, want := range []string{",斤,1,1,2024-01-01,", "萝卜,斤,2,2,,"} {
		if !slices.Contains(lines, want) {
			t.Errorf("store lost row %q:\n%s", want, content)
		}
	}
}

func TestFileStoreErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "food_prices.csv")
	if err := os.WriteFile(file, []byte("name,price\ncabbage,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := NewFileStore(file, "").LoadPrices()
	var storeErr *StoreError
	if !errors.As(err, &storeErr) || storeErr.Path != file {
		t.Fatalf("LoadPrices() error = %v, want a *StoreError on %s", err, file)
	}
	var schema *SchemaError
	if !errors.As(err, &schema) {
		t.Errorf("LoadPrices() error = %v, want it to wrap a *SchemaError", err)
	}
}

func TestFileStoreOrders(t *testing.T) {
	file := filepath.Join(t.TempDir(), "order_history.csv")
	store := NewFileStore("", file)
	// an empty file gets the header too
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	at := time.Date(2024, 1, 8, 10, 0, 0, 0, time.Local)
	line := NewOrderLine("白菜", "斤", d("2"), d("4.4"))
	for i := 0; i < 2; i++ {
		if err := store.AppendOrders([]OrderRecord{{OrderedAt: at.Add(time.Duration(i) * time.Hour), OrderLine: line}}); err != nil {
			t.Fatalf("AppendOrders() error = %v", err)
		}
	}

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	want := "订单日期,品种,单位,数量,单价,小计\n" +
		"2024-01-08 10:00:00,白菜,斤,2,4.4,8.8\n" +
		"2024-01-08 11:00:00,白菜,斤,2,4.4,8.8\n"
	if string(content) != want {
		t.Errorf("order store =\n%s\nwant\n%s", content, want)
	}

	got, err := store.LoadOrders()
	if err != nil {
		t.Fatalf("LoadOrders() error = %v", err)
	}
	if len(got) != 2 || !got[1].OrderedAt.Equal(at.Add(time.Hour)) || !got[1].Subtotal.Equal(d("8.8")) {
		t.Errorf("LoadOrders() = %+v", got)
	}
	if !strings.HasPrefix(string(content), ColOrderDate) {
		t.Errorf("order store does not start with its header")
	}
}
