package grid

import (
	"testing"
)

func sameKeys(a []RowKey, b ...RowKey) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestToggleRowFlipsMembership(t *testing.T) {
	tab := newStaffTable(sampleStaff(), Options{Select: true}, Callbacks[staffRow]{})

	tab.ToggleRow("e2")
	if !tab.IsSelected("e2") {
		t.Fatalf("expected e2 selected")
	}

	tab.ToggleRow("e2")
	if tab.IsSelected("e2") {
		t.Fatalf("expected e2 deselected")
	}
}

func TestToggleSelectAllIsPageScoped(t *testing.T) {
	tab := newStaffTable(sampleStaff(), Options{Select: true, Paginate: true, PageSize: 2}, Callbacks[staffRow]{})

	tab.ToggleRow("e1") // page 1 row, must survive the page 2 toggles
	tab.SetPage(2)      // page 2 shows e3, e4

	tab.ToggleSelectAll()
	if got := tab.SelectedKeys(); !sameKeys(got, "e1", "e3", "e4") {
		t.Fatalf("expected page rows added, got=%v", got)
	}

	tab.ToggleSelectAll()
	if got := tab.SelectedKeys(); !sameKeys(got, "e1") {
		t.Fatalf("expected only page rows removed, got=%v", got)
	}
}

func TestToggleSelectAllPartialPageSelectsRest(t *testing.T) {
	tab := newStaffTable(sampleStaff(), Options{Select: true, Paginate: true, PageSize: 2}, Callbacks[staffRow]{})

	tab.ToggleRow("e1") // half of page 1
	tab.ToggleSelectAll()

	if got := tab.SelectedKeys(); !sameKeys(got, "e1", "e2") {
		t.Fatalf("expected whole page selected, got=%v", got)
	}
}

func TestToggleSelectAllEmptyPageIsNoOp(t *testing.T) {
	calls := 0
	tab := newStaffTable(sampleStaff(), Options{Search: true, Select: true}, Callbacks[staffRow]{
		SelectionChange: func([]RowKey) { calls++ },
	})

	tab.SetSearch("zzzz")
	tab.ToggleSelectAll()

	if calls != 0 {
		t.Fatalf("expected no callback on empty page, got=%d", calls)
	}
	if n := tab.SelectionCount(); n != 0 {
		t.Fatalf("expected selection unchanged, got=%d", n)
	}
}

func TestClearSelectionIsUnconditional(t *testing.T) {
	calls := 0
	tab := newStaffTable(sampleStaff(), Options{Select: true}, Callbacks[staffRow]{
		SelectionChange: func(keys []RowKey) {
			calls++
			if len(keys) != 0 && calls == 2 {
				t.Fatalf("expected empty set on clear, got=%v", keys)
			}
		},
	})

	tab.ToggleRow("e1")
	tab.ClearSelection()
	tab.ClearSelection() // already empty, still notifies

	if calls != 3 {
		t.Fatalf("expected 3 notifications, got=%d", calls)
	}
	if n := tab.SelectionCount(); n != 0 {
		t.Fatalf("expected empty selection, got=%d", n)
	}
}

func TestSelectionSurvivesFiltering(t *testing.T) {
	tab := newStaffTable(sampleStaff(), Options{Search: true, Select: true}, Callbacks[staffRow]{})

	tab.ToggleRow("e2") // Ben, Sales
	tab.SetSearch("ops")

	// Ben is hidden now but his selection is not pruned.
	if !tab.IsSelected("e2") {
		t.Fatalf("expected hidden row to stay selected")
	}
	if got := tab.SelectedKeys(); !sameKeys(got, "e2") {
		t.Fatalf("expected orphan key retained, got=%v", got)
	}

	tab.SetSearch("")
	if !tab.IsSelected("e2") {
		t.Fatalf("expected selection intact once the row is visible again")
	}
}

func TestSelectionCallbackFiresOncePerOperation(t *testing.T) {
	calls := 0
	tab := newStaffTable(sampleStaff(), Options{Select: true, Paginate: true, PageSize: 2}, Callbacks[staffRow]{
		SelectionChange: func([]RowKey) { calls++ },
	})

	tab.ToggleRow("e1")
	tab.ToggleSelectAll()
	tab.ClearSelection()

	if calls != 3 {
		t.Fatalf("expected one callback per operation, got=%d", calls)
	}
}

func TestSelectionDisabledIsNoOp(t *testing.T) {
	calls := 0
	tab := newStaffTable(sampleStaff(), Options{}, Callbacks[staffRow]{
		SelectionChange: func([]RowKey) { calls++ },
	})

	tab.ToggleRow("e1")
	tab.ToggleSelectAll()
	tab.ClearSelection()

	if calls != 0 || tab.SelectionCount() != 0 {
		t.Fatalf("expected everything ignored, calls=%d count=%d", calls, tab.SelectionCount())
	}
}
