package grid

// BeginEdit opens the single edit slot for the given cell. The request
// is silently ignored when editing is disabled, the column is not
// editable, or another cell is already mid-edit: at most one cell can
// be in edit mode at a time.
func (t *Table[T]) BeginEdit(row RowKey, columnKey string) {
	if !t.opts.Edit || t.editing != nil {
		return
	}
	col, ok := t.columnByKey(columnKey)
	if !ok || !col.Editable {
		return
	}
	t.editing = &CellRef{Row: row, Col: columnKey}
}

// CommitEdit fires CellCommit with the edited row and value, then
// returns to idle. The engine hands value through untouched; typing and
// validation are the caller's job. If the edited row left the dataset
// mid-edit, the edit clears without a callback.
func (t *Table[T]) CommitEdit(value any) {
	e := t.editing
	if e == nil {
		return
	}
	t.editing = nil
	row, ok := t.rowByKey(e.Row)
	if !ok {
		return
	}
	if t.cbs.CellCommit != nil {
		t.cbs.CellCommit(row, e.Col, value)
	}
}

// CancelEdit returns to idle without firing the commit callback. Hosts
// call it on escape or focus loss.
func (t *Table[T]) CancelEdit() {
	t.editing = nil
}

// EditingCell reports the cell currently in edit mode.
func (t *Table[T]) EditingCell() (CellRef, bool) {
	if t.editing == nil {
		return CellRef{}, false
	}
	return *t.editing, true
}
