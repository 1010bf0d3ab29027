package pricebook

import (
	"slices"
	"testing"

	"github.com/etnz/pricebook/date"
)

func TestLatest(t *testing.T) {
	l, _ := newTestLedger(t)
	mustImport(t, l,
		[]string{"土豆", "斤", "1.2", "1.5", "2024-01-08"},
		[]string{"白菜", "斤", "3.5", "4", "2024-01-01"},
	)
	mustImport(t, l, []string{"白菜", "斤", "3.6", "4.1", "2024-01-08"})

	latest, err := l.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	dates, err := l.Dates()
	if err != nil {
		t.Fatalf("Dates() error = %v", err)
	}
	var items []string
	for _, r := range latest {
		if r.Date != dates[0] {
			t.Errorf("Latest() holds %s, want only %s", r.Date, dates[0])
		}
		items = append(items, r.Item)
	}
	if want := []string{"土豆", "白菜"}; !slices.Equal(items, want) {
		t.Errorf("Latest() items = %q, want %q", items, want)
	}
	if want := []date.Date{date.New(2024, 1, 8), date.New(2024, 1, 1)}; !slices.Equal(dates, want) {
		t.Errorf("Dates() = %v, want %v", dates, want)
	}
}

func TestLatestKeepsReuploads(t *testing.T) {
	l, _ := newTestLedger(t)
	mustImport(t, l, []string{"白菜", "斤", "3.5", "4", "2024-01-08"})
	mustImport(t, l, []string{"白菜", "斤", "3.6", "4", "2024-01-08"})

	latest, err := l.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if len(latest) != 2 {
		t.Errorf("Latest() = %+v, want both uploads", latest)
	}
}

func TestItemsAndOn(t *testing.T) {
	l, _ := newTestLedger(t)
	mustImport(t, l,
		[]string{"土豆", "斤", "1.2", "1.5", "2024-01-08"},
		[]string{"白菜", "斤", "3.5", "4", "2024-01-01"},
	)
	mustImport(t, l, []string{"白菜", "斤", "3.6", "4.1", "2024-01-08"})

	items, err := l.Items()
	if err != nil {
		t.Fatalf("Items() error = %v", err)
	}
	if want := []string{"土豆", "白菜"}; !slices.Equal(items, want) {
		t.Errorf("Items() = %q, want %q", items, want)
	}

	on, err := l.On(date.New(2024, 1, 8))
	if err != nil {
		t.Fatalf("On() error = %v", err)
	}
	var got []string
	for _, r := range on {
		got = append(got, r.Item)
	}
	// the latest upload comes first in the store
	if want := []string{"白菜", "土豆"}; !slices.Equal(got, want) {
		t.Errorf("On(2024-01-08) items = %q, want %q", got, want)
	}

	on, err = l.On(date.New(2023, 12, 31))
	if err != nil {
		t.Fatalf("On() error = %v", err)
	}
	if len(on) != 0 {
		t.Errorf("On(2023-12-31) = %+v, want none", on)
	}
}

func TestCompare(t *testing.T) {
	l, _ := newTestLedger(t)
	mustImport(t, l,
		[]string{"白菜", "斤", "3.5", "4", "2024-01-01"},
		[]string{"土豆", "斤", "0", "1.5", "2024-01-01"},
		[]string{"萝卜", "斤", "2", "2", "2024-01-01"},
	)
	mustImport(t, l,
		[]string{"白菜", "斤", "3.5", "3.6", "2024-01-08"},
		[]string{"土豆", "斤", "1.3", "1.5", "2024-01-08"},
	)

	t.Run("same date", func(t *testing.T) {
		day := date.New(2024, 1, 1)
		cmp, err := l.Compare(day, day)
		if err != nil {
			t.Fatalf("Compare() error = %v", err)
		}
		if len(cmp) != 3 {
			t.Fatalf("Compare() = %+v, want 3 items", cmp)
		}
		for _, c := range cmp {
			for _, ch := range Channels {
				if c.Change(ch).Ratio() != 0 {
					t.Errorf("%s %s change = %s, want none", c.Item, ch, c.Change(ch))
				}
			}
		}
	})

	t.Run("to latest", func(t *testing.T) {
		cmp, err := l.Compare(date.New(2024, 1, 1), date.Date{})
		if err != nil {
			t.Fatalf("Compare() error = %v", err)
		}
		want := map[string][2]string{
			"白菜": {"0.0%", "-10.0%"},
			"土豆": {"0%", "0.0%"},
		}
		if len(cmp) != len(want) {
			t.Fatalf("Compare() = %+v, want %d items", cmp, len(want))
		}
		for _, c := range cmp {
			w := want[c.Item]
			if got := [2]string{c.Change(ChannelA).String(), c.Change(ChannelB).String()}; got != w {
				t.Errorf("%s changes = %q, want %q", c.Item, got, w)
			}
		}
	})

	t.Run("unknown date", func(t *testing.T) {
		cmp, err := l.Compare(date.New(2023, 1, 1), date.Date{})
		if err != nil || len(cmp) != 0 {
			t.Errorf("Compare() = %v, %v, want no items and no error", cmp, err)
		}
	})
}

func TestTrend(t *testing.T) {
	l, _ := newTestLedger(t)
	mustImport(t, l,
		[]string{"白菜", "斤", "3.5", "4", "2024-01-01"},
		[]string{"土豆", "斤", "1", "1", "2024-01-01"},
	)
	mustImport(t, l, []string{"白菜", "斤", "4", "4.4", "2024-01-08"})
	mustImport(t, l, []string{"白菜", "斤", "3.333", "4.1", "2024-01-05"})

	tr, err := l.Trend("白菜")
	if err != nil {
		t.Fatalf("Trend() error = %v", err)
	}
	if tr.Unit != "斤" || len(tr.Points) != 3 {
		t.Fatalf("Trend() = %+v, want 3 points in 斤", tr)
	}
	for i := 1; i < len(tr.Points); i++ {
		if !tr.Points[i-1].Date.After(tr.Points[i].Date) {
			t.Errorf("Trend() points not most recent first: %+v", tr.Points)
		}
	}
	if tr.MaxA != 4 || tr.MinA != 3.33 || tr.MeanA != 3.61 {
		t.Errorf("Trend() A = %v/%v/%v, want 4/3.33/3.61", tr.MaxA, tr.MinA, tr.MeanA)
	}
	if tr.MaxB != 4.4 || tr.MinB != 4 || tr.MeanB != 4.17 {
		t.Errorf("Trend() B = %v/%v/%v, want 4.4/4/4.17", tr.MaxB, tr.MinB, tr.MeanB)
	}
	for _, s := range [][3]float64{{tr.MinA, tr.MeanA, tr.MaxA}, {tr.MinB, tr.MeanB, tr.MaxB}} {
		if !(s[0] <= s[1] && s[1] <= s[2]) {
			t.Errorf("Trend() statistics %v are not ordered", s)
		}
	}
}

func TestStatsBounds(t *testing.T) {
	// every value rounds up, the mean must not exceed the rounded max.
	hi, lo, mean := stats([]float64{1.005, 1.005, 1.005})
	if !(lo <= mean && mean <= hi) {
		t.Errorf("stats() = %v, %v, %v, want lo <= mean <= hi", hi, lo, mean)
	}
}
