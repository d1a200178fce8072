package grid

// Direction is the active sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// CycleSort advances the sort state for columnKey through the cycle
// unsorted -> ascending -> descending -> unsorted, never skipping a
// state. Activating a column while another one is active starts the new
// column at ascending. No-op when sorting is disabled or the column is
// not sortable.
func (t *Table[T]) CycleSort(columnKey string) {
	if !t.opts.Sort {
		return
	}
	col, ok := t.columnByKey(columnKey)
	if !ok || !t.columnSortable(col) {
		return
	}
	switch {
	case t.sortKey != columnKey:
		t.sortKey = columnKey
		t.sortDir = Ascending
	case t.sortDir == Ascending:
		t.sortDir = Descending
	default:
		t.sortKey = ""
		t.sortDir = Ascending
	}
	if t.cbs.SortChange != nil {
		t.cbs.SortChange(t.sortKey, t.sortDir)
	}
}

func (t *Table[T]) columnSortable(c Column[T]) bool {
	return c.Sortable || t.opts.SortAll
}

// Sort reports the active sort column and direction; ok is false in the
// unsorted state.
func (t *Table[T]) Sort() (columnKey string, dir Direction, ok bool) {
	return t.sortKey, t.sortDir, t.sortKey != ""
}
