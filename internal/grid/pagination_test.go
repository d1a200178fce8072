package grid

import (
	"fmt"
	"testing"
)

// rosterRows builds n rows whose dept field splits into a 5-row "north-a"
// head, a 10-row "north-b" middle, and a "south" tail, so searches can
// shrink the filtered count to known sizes.
func rosterRows(n int) []staffRow {
	out := make([]staffRow, 0, n)
	for i := 0; i < n; i++ {
		dept := "south"
		switch {
		case i < 5:
			dept = "north-a"
		case i < 15:
			dept = "north-b"
		}
		out = append(out, staffRow{
			id:   fmt.Sprintf("r%02d", i),
			name: fmt.Sprintf("Member %02d", i),
			dept: dept,
		})
	}
	return out
}

func TestTotalPagesRoundsUp(t *testing.T) {
	tab := newStaffTable(rosterRows(25), Options{Paginate: true, PageSize: 10}, Callbacks[staffRow]{})

	if got := tab.TotalPages(); got != 3 {
		t.Fatalf("expected 3 pages, got=%d", got)
	}
	if got := len(tab.Visible().Rows); got != 10 {
		t.Fatalf("expected 10 rows on page 1, got=%d", got)
	}

	tab.SetPage(3)
	if got := len(tab.Visible().Rows); got != 5 {
		t.Fatalf("expected 5 rows on the last page, got=%d", got)
	}
}

func TestSetPageClampsSilently(t *testing.T) {
	tab := newStaffTable(rosterRows(25), Options{Paginate: true, PageSize: 10}, Callbacks[staffRow]{})

	tab.SetPage(99)
	if got := tab.CurrentPage(); got != 3 {
		t.Fatalf("expected clamp to 3, got=%d", got)
	}

	tab.SetPage(-4)
	if got := tab.CurrentPage(); got != 1 {
		t.Fatalf("expected clamp to 1, got=%d", got)
	}
}

func TestPageReclampsWhenFilterShrinksCount(t *testing.T) {
	tab := newStaffTable(rosterRows(25), Options{Search: true, Paginate: true, PageSize: 10}, Callbacks[staffRow]{})

	tab.SetPage(3)
	tab.SetSearch("north-a") // 5 rows left

	if got := tab.TotalPages(); got != 1 {
		t.Fatalf("expected 1 page, got=%d", got)
	}
	if got := tab.CurrentPage(); got != 1 {
		t.Fatalf("expected re-clamp to 1, got=%d", got)
	}
}

func TestPageHoldsWhenStillInRange(t *testing.T) {
	tab := newStaffTable(rosterRows(25), Options{Search: true, Paginate: true, PageSize: 10}, Callbacks[staffRow]{})

	tab.SetPage(2)
	tab.SetSearch("north") // 15 rows, still 2 pages

	if got := tab.CurrentPage(); got != 2 {
		t.Fatalf("expected page to stay at 2, got=%d", got)
	}
	if got := len(tab.Visible().Rows); got != 5 {
		t.Fatalf("expected the 5-row tail page, got=%d", got)
	}
}

func TestPaginationDisabledReturnsEverything(t *testing.T) {
	tab := newStaffTable(rosterRows(25), Options{}, Callbacks[staffRow]{})

	v := tab.Visible()
	if len(v.Rows) != 25 || v.TotalPages != 1 {
		t.Fatalf("expected full set on one page, got rows=%d total=%d", len(v.Rows), v.TotalPages)
	}
}

func TestEmptyDatasetHasOnePage(t *testing.T) {
	tab := newStaffTable(nil, Options{Paginate: true, PageSize: 10}, Callbacks[staffRow]{})

	v := tab.Visible()
	if v.TotalPages != 1 || tab.CurrentPage() != 1 || len(v.Rows) != 0 {
		t.Fatalf("expected one empty page, got total=%d page=%d rows=%d", v.TotalPages, tab.CurrentPage(), len(v.Rows))
	}
}

func TestDefaultPageSizeApplies(t *testing.T) {
	tab := newStaffTable(rosterRows(30), Options{Paginate: true}, Callbacks[staffRow]{})

	if got := tab.Options().PageSize; got != DefaultPageSize {
		t.Fatalf("expected default page size, got=%d", got)
	}
	if got := tab.TotalPages(); got != 2 {
		t.Fatalf("expected 2 pages of 25, got=%d", got)
	}
}

func TestNextPrevPageClamp(t *testing.T) {
	tab := newStaffTable(rosterRows(25), Options{Paginate: true, PageSize: 10}, Callbacks[staffRow]{})

	tab.PrevPage()
	if got := tab.CurrentPage(); got != 1 {
		t.Fatalf("expected to stay on page 1, got=%d", got)
	}

	tab.NextPage()
	tab.NextPage()
	tab.NextPage() // clamped at 3
	if got := tab.CurrentPage(); got != 3 {
		t.Fatalf("expected clamp at the last page, got=%d", got)
	}

	if got := tab.Visible().Start; got != 20 {
		t.Fatalf("expected page 3 to start at row 20, got=%d", got)
	}
}
