package listview_test

import (
	"testing"
	"time"

	"github.com/coastalops/launchtours/internal/listview"
)

type row struct {
	Name  string
	Rank  int64
	When  time.Time
	Ready bool
}

var rowColumns = listview.Columns[row]{
	"name":  listview.StringColumn(func(r row) string { return r.Name }),
	"rank":  listview.IntColumn(func(r row) int64 { return r.Rank }),
	"when":  listview.TimeColumn(func(r row) time.Time { return r.When }),
	"ready": listview.BoolColumn(func(r row) bool { return r.Ready }),
}

func names(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSortItems_StableOnTies(t *testing.T) {
	in := []row{
		{Name: "B", Rank: 1},
		{Name: "A", Rank: 2},
		{Name: "A", Rank: 1},
	}
	out := listview.SortItems(in, &listview.Sort{Column: "name", Direction: listview.Asc}, rowColumns)

	// The two A rows tie on name, so their original relative order survives.
	want := []row{{Name: "A", Rank: 2}, {Name: "A", Rank: 1}, {Name: "B", Rank: 1}}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("position %d: got %+v want %+v", i, out[i], want[i])
		}
	}
}

func TestSortItems_DoesNotMutateInput(t *testing.T) {
	in := []row{{Name: "C"}, {Name: "A"}, {Name: "B"}}
	_ = listview.SortItems(in, &listview.Sort{Column: "name", Direction: listview.Asc}, rowColumns)
	if in[0].Name != "C" || in[1].Name != "A" || in[2].Name != "B" {
		t.Fatalf("input slice was reordered: %v", names(in))
	}
}

func TestSortItems_NilSortPreservesOrder(t *testing.T) {
	in := []row{{Name: "C"}, {Name: "A"}}
	out := listview.SortItems(in, nil, rowColumns)
	if &out[0] != &in[0] {
		t.Fatalf("nil sort should return the input slice unchanged")
	}
}

func TestSortItems_UnknownColumnPreservesOrder(t *testing.T) {
	in := []row{{Name: "C"}, {Name: "A"}, {Name: "B"}}
	out := listview.SortItems(in, &listview.Sort{Column: "bogus", Direction: listview.Asc}, rowColumns)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("unknown column must leave order unchanged, got %v", names(out))
		}
	}
}

func TestSortItems_Descending(t *testing.T) {
	in := []row{{Name: "x", Rank: 1}, {Name: "y", Rank: 3}, {Name: "z", Rank: 2}}
	out := listview.SortItems(in, &listview.Sort{Column: "rank", Direction: listview.Desc}, rowColumns)
	if out[0].Rank != 3 || out[1].Rank != 2 || out[2].Rank != 1 {
		t.Fatalf("unexpected descending order: %+v", out)
	}
}

func TestSortItems_TimeAndBoolColumns(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []row{
		{Name: "late", When: t0.Add(time.Hour), Ready: true},
		{Name: "early", When: t0, Ready: false},
	}

	out := listview.SortItems(in, &listview.Sort{Column: "when", Direction: listview.Asc}, rowColumns)
	if out[0].Name != "early" {
		t.Fatalf("expected chronological order, got %v", names(out))
	}

	out = listview.SortItems(in, &listview.Sort{Column: "ready", Direction: listview.Asc}, rowColumns)
	if out[0].Ready {
		t.Fatalf("expected false before true, got %+v", out)
	}
}

func TestSortItems_LocaleAwareStrings(t *testing.T) {
	in := []row{{Name: "Éclair"}, {Name: "Apple"}, {Name: "eagle"}}
	out := listview.SortItems(in, &listview.Sort{Column: "name", Direction: listview.Asc}, rowColumns)
	// Loose collation ignores case and accents, so eagle < Éclair.
	if out[0].Name != "Apple" || out[1].Name != "eagle" || out[2].Name != "Éclair" {
		t.Fatalf("unexpected collation order: %v", names(out))
	}
}
