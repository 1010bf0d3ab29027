package pricebook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/daily/prices.csv":
			w.Write([]byte("item,unit,price_a,price_b,date\n白菜,斤,3.5,4,2024-01-08\n"))
		case "/daily/prices.json":
			w.Write([]byte(`[{"item": "白菜", "unit": "斤", "price_a": 3.5, "price_b": 4, "date": "2024-01-08"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	for _, name := range []string{"prices.csv", "prices.json"} {
		t.Run(name, func(t *testing.T) {
			tbl, err := FetchTable(context.Background(), srv.URL+"/daily/"+name+"?day=today")
			if err != nil {
				t.Fatalf("FetchTable() error = %v", err)
			}
			records, err := tbl.PriceBatch(testTime)
			if err != nil {
				t.Fatalf("PriceBatch() error = %v", err)
			}
			if len(records) != 1 || records[0].PriceB != 4 {
				t.Errorf("PriceBatch() = %+v", records)
			}
		})
	}

	if _, err := FetchTable(context.Background(), srv.URL+"/missing.csv"); err == nil {
		t.Errorf("FetchTable() of a missing sheet succeeded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FetchTable(ctx, srv.URL+"/daily/prices.csv"); err == nil {
		t.Errorf("FetchTable() with a canceled context succeeded")
	}
}

func TestIsURL(t *testing.T) {
	for in, want := range map[string]bool{
		"https://example.com/prices.xlsx": true,
		"http://example.com/prices.csv":   true,
		"prices.csv":                      false,
		"/tmp/http.csv":                   false,
	} {
		if got := IsURL(in); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", in, got, want)
		}
	}
}
