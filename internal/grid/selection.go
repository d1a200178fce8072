package grid

import "sort"

// ToggleRow flips the selection state of key and fires SelectionChange.
// Keys are not checked against the dataset; toggling an unknown key
// simply records it (missing/duplicate keys are a caller bug, see
// Config.KeyOf).
func (t *Table[T]) ToggleRow(key RowKey) {
	if !t.opts.Select {
		return
	}
	if _, ok := t.selected[key]; ok {
		delete(t.selected, key)
	} else {
		t.selected[key] = struct{}{}
	}
	t.notifySelection()
}

// ToggleSelectAll selects or clears the current page's rows only. When
// every visible key is already selected, exactly those keys are removed;
// otherwise all of them are added. Selections on other pages are never
// touched, and keys hidden by the active filter stay selected. An empty
// page is a no-op with no callback.
func (t *Table[T]) ToggleSelectAll() {
	if !t.opts.Select {
		return
	}
	keys := t.Visible().Keys
	if len(keys) == 0 {
		return
	}
	all := true
	for _, k := range keys {
		if _, ok := t.selected[k]; !ok {
			all = false
			break
		}
	}
	if all {
		for _, k := range keys {
			delete(t.selected, k)
		}
	} else {
		for _, k := range keys {
			t.selected[k] = struct{}{}
		}
	}
	t.notifySelection()
}

// ClearSelection empties the selection unconditionally and fires
// SelectionChange, even when it was already empty.
func (t *Table[T]) ClearSelection() {
	if !t.opts.Select {
		return
	}
	t.selected = make(map[RowKey]struct{})
	t.notifySelection()
}

// SelectedKeys returns the selected keys as a sorted copy.
func (t *Table[T]) SelectedKeys() []RowKey {
	out := make([]RowKey, 0, len(t.selected))
	for k := range t.selected {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsSelected reports whether key is in the selection.
func (t *Table[T]) IsSelected(key RowKey) bool {
	_, ok := t.selected[key]
	return ok
}

// SelectionCount is the size of the selection, hidden keys included.
func (t *Table[T]) SelectionCount() int { return len(t.selected) }

func (t *Table[T]) notifySelection() {
	if t.cbs.SelectionChange != nil {
		t.cbs.SelectionChange(t.SelectedKeys())
	}
}
