package grid

import (
	"sort"
	"strings"
	"time"
)

// View is one derived window over the dataset: the current page's rows
// after filtering and sorting, together with the pagination facts a host
// needs to render chrome around them.
type View[T any] struct {
	Rows []T
	Keys []RowKey

	// Start is the absolute position of Rows[0] within the filtered,
	// sorted set, zero-based.
	Start int

	FilteredCount int
	TotalPages    int
}

// deriveKey is the structural memo key for Visible. Two derivations with
// equal keys see identical inputs, so the cached view can be reused.
type deriveKey struct {
	rev      int
	query    string
	sortKey  string
	sortDir  Direction
	page     int
	pageSize int
	paginate bool
}

// Visible derives the current page through the filter -> sort -> paginate
// pipeline. Derivation is pure in the table inputs and memoized on a
// structural key, so calling it on every render is cheap.
func (t *Table[T]) Visible() View[T] {
	k := deriveKey{
		rev:      t.rev,
		query:    t.query,
		sortKey:  t.sortKey,
		sortDir:  t.sortDir,
		page:     t.page,
		pageSize: t.opts.PageSize,
		paginate: t.opts.Paginate,
	}
	if t.memoOK && t.memoAt == k {
		return t.memo
	}

	ents := t.sorted(t.filtered())
	total := t.totalPagesFor(len(ents))
	start, end := 0, len(ents)
	if t.opts.Paginate {
		page := clampInt(t.page, 1, total)
		start = (page - 1) * t.opts.PageSize
		if start > len(ents) {
			start = len(ents)
		}
		end = start + t.opts.PageSize
		if end > len(ents) {
			end = len(ents)
		}
	}

	v := View[T]{
		Rows:          make([]T, 0, end-start),
		Keys:          make([]RowKey, 0, end-start),
		Start:         start,
		FilteredCount: len(ents),
		TotalPages:    total,
	}
	for _, e := range ents[start:end] {
		v.Rows = append(v.Rows, e.row)
		v.Keys = append(v.Keys, e.key)
	}

	t.memo, t.memoAt, t.memoOK = v, k, true
	return v
}

// FilteredSorted returns the full filtered, sorted dataset regardless of
// pagination. Export and bulk operations read from here; the result is a
// fresh slice the caller may keep.
func (t *Table[T]) FilteredSorted() []T {
	ents := t.sorted(t.filtered())
	out := make([]T, len(ents))
	for i, e := range ents {
		out[i] = e.row
	}
	return out
}

// filtered applies the search stage. An empty query is an identity pass
// that preserves the snapshot order and count.
func (t *Table[T]) filtered() []rowEntry[T] {
	q := strings.ToLower(t.query)
	if q == "" {
		return t.entries
	}
	out := make([]rowEntry[T], 0, len(t.entries))
	for _, e := range t.entries {
		if t.rowMatches(e.row, q) {
			out = append(out, e)
		}
	}
	return out
}

// rowMatches keeps a row iff the lowercased string form of any field
// value contains q. Plain substring match, no tokenization; nil values
// never match.
func (t *Table[T]) rowMatches(row T, q string) bool {
	for _, v := range t.filterValues(row) {
		if v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(cellText(v)), q) {
			return true
		}
	}
	return false
}

// filterValues lists the values the filter stage probes for one row:
// every field-map entry, or every column's extractor when no field map
// was supplied.
func (t *Table[T]) filterValues(row T) []any {
	if len(t.fields) > 0 {
		out := make([]any, 0, len(t.fields))
		for _, f := range t.fields {
			if f != nil {
				out = append(out, f(row))
			}
		}
		return out
	}
	out := make([]any, 0, len(t.cols))
	for i := range t.cols {
		out = append(out, t.valueOf(t.cols[i], row))
	}
	return out
}

// sorted applies the sort stage. The sort is stable: rows with equal
// keys keep their pre-sort relative order.
func (t *Table[T]) sorted(ents []rowEntry[T]) []rowEntry[T] {
	if t.sortKey == "" {
		return ents
	}
	col, ok := t.columnByKey(t.sortKey)
	if !ok {
		return ents
	}
	out := make([]rowEntry[T], len(ents))
	copy(out, ents)
	sort.SliceStable(out, func(i, j int) bool {
		return t.compare(t.valueOf(col, out[i].row), t.valueOf(col, out[j].row)) < 0
	})
	return out
}

// compare orders two cell values under the active direction. nil sorts
// after every defined value in both directions.
func (t *Table[T]) compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	c := t.compareDefined(a, b)
	if t.sortDir == Descending {
		c = -c
	}
	return c
}

// compareDefined compares two non-nil values: numbers by subtraction,
// times chronologically, everything else as collated strings.
func (t *Table[T]) compareDefined(a, b any) int {
	if fa, ok := numericValue(a); ok {
		if fb, ok := numericValue(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			switch {
			case ta.Before(tb):
				return -1
			case ta.After(tb):
				return 1
			}
			return 0
		}
	}
	return t.coll.CompareString(cellText(a), cellText(b))
}
