// Package grid implements a renderless interactive table engine: search
// filtering, single-column stable sorting, page-relative selection,
// single-slot cell editing, pagination, and header/body scroll
// synchronization over an in-memory dataset.
//
// The engine owns table state and mutates it only through its own
// operations; it never draws, fetches, or persists anything. Hosts feed
// it user interaction events and render from Visible().
package grid

import (
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultPageSize applies when pagination is enabled without an explicit
// page size.
const DefaultPageSize = 25

// Options are the per-table feature switches. A disabled feature turns
// the corresponding operations into silent no-ops, mirroring a host that
// simply does not render the affordance.
type Options struct {
	Search   bool
	Sort     bool
	Select   bool
	Paginate bool
	Edit     bool

	// SortAll treats every column as sortable even when its own flag is
	// false. Columns opt in individually otherwise.
	SortAll bool

	// PageSize is rows per page; used only when Paginate is set.
	PageSize int
}

// Callbacks notify the host of applied state transitions. All fields are
// optional; nil callbacks are skipped. Callbacks run synchronously on
// the caller's goroutine, once per operation.
type Callbacks[T any] struct {
	// RowActivate fires when the host reports a row press. index is the
	// row's position on the current page, zero-based.
	RowActivate func(row T, index int)

	// CellCommit delivers a committed edit. The engine passes value
	// through untouched; parsing and validation belong to the caller.
	CellCommit func(row T, columnKey string, value any)

	// SelectionChange fires once per applied selection mutation with a
	// sorted copy of the selected keys.
	SelectionChange func(keys []RowKey)

	// SortChange fires after every applied sort transition. columnKey is
	// empty when the cycle returns to the unsorted state.
	SortChange func(columnKey string, dir Direction)

	// SearchChange fires after the search query changes.
	SearchChange func(query string)
}

// Config assembles a new table instance.
type Config[T any] struct {
	Columns []Column[T]

	// Fields is the default per-key value lookup used by the filter and
	// sort stages. Column.Value overrides it for a single column.
	Fields map[string]func(row T) any

	// KeyOf must return a key that is stable and unique within one
	// dataset snapshot. Duplicate keys make selection and edit targeting
	// ambiguous (last write wins); the engine does not defend against
	// them. When nil, the row's snapshot index is used.
	KeyOf func(row T, index int) RowKey

	Rows      []T
	Options   Options
	Callbacks Callbacks[T]

	// Locale selects the collation used for string comparison in the
	// sort stage. The zero value collates without language-specific
	// tailoring.
	Locale language.Tag
}

type rowEntry[T any] struct {
	row T
	key RowKey
}

// Table is one table instance: the dataset snapshot, the column set, and
// the interaction state (query, sort, selection, page, editing cell).
// Every hosted table owns its own Table; nothing is shared across
// instances. All methods must be called from a single goroutine,
// normally the hosting event loop.
type Table[T any] struct {
	cols   []Column[T]
	fields map[string]func(row T) any
	keyOf  func(row T, index int) RowKey
	opts   Options
	cbs    Callbacks[T]
	coll   *collate.Collator

	entries []rowEntry[T]
	rev     int

	query    string
	sortKey  string
	sortDir  Direction
	selected map[RowKey]struct{}
	page     int
	editing  *CellRef

	memo   View[T]
	memoAt deriveKey
	memoOK bool
}

// New builds a table over the supplied dataset snapshot.
func New[T any](cfg Config[T]) *Table[T] {
	t := &Table[T]{
		cols:     cfg.Columns,
		fields:   cfg.Fields,
		keyOf:    cfg.KeyOf,
		opts:     cfg.Options,
		cbs:      cfg.Callbacks,
		coll:     collate.New(cfg.Locale),
		selected: make(map[RowKey]struct{}),
		page:     1,
		sortDir:  Ascending,
	}
	if t.opts.Paginate && t.opts.PageSize <= 0 {
		t.opts.PageSize = DefaultPageSize
	}
	t.setEntries(cfg.Rows)
	return t
}

// SetRows replaces the dataset snapshot. The selection is carried over
// untouched, including keys that no longer resolve to a row; the page
// re-clamps against the new filtered count.
func (t *Table[T]) SetRows(rows []T) {
	t.setEntries(rows)
}

func (t *Table[T]) setEntries(rows []T) {
	entries := make([]rowEntry[T], len(rows))
	for i, r := range rows {
		entries[i] = rowEntry[T]{row: r, key: t.rowKeyAt(r, i)}
	}
	t.entries = entries
	t.rev++
	t.reclampPage()
}

func (t *Table[T]) rowKeyAt(row T, index int) RowKey {
	if t.keyOf != nil {
		return t.keyOf(row, index)
	}
	return RowKey(strconv.Itoa(index))
}

// SetColumns swaps the column set and resets all interaction state:
// search, sort, selection, page and any active edit. Columns are
// otherwise fixed for the life of the instance.
func (t *Table[T]) SetColumns(cols []Column[T]) {
	t.cols = cols
	t.query = ""
	t.sortKey = ""
	t.sortDir = Ascending
	t.selected = make(map[RowKey]struct{})
	t.page = 1
	t.editing = nil
	t.rev++
}

// SetSearch applies a new search query, re-clamps the page, and fires
// SearchChange. No-op when searching is disabled or the query is
// unchanged.
func (t *Table[T]) SetSearch(query string) {
	if !t.opts.Search || query == t.query {
		return
	}
	t.query = query
	t.reclampPage()
	if t.cbs.SearchChange != nil {
		t.cbs.SearchChange(query)
	}
}

// SearchQuery returns the active query ("" when idle).
func (t *Table[T]) SearchQuery() string { return t.query }

// ActivateRow reports a press on the current page's row at index, firing
// RowActivate. Out-of-range indexes are ignored.
func (t *Table[T]) ActivateRow(index int) {
	v := t.Visible()
	if index < 0 || index >= len(v.Rows) {
		return
	}
	if t.cbs.RowActivate != nil {
		t.cbs.RowActivate(v.Rows[index], index)
	}
}

// Columns returns the active column set. Callers must treat it as
// read-only; replacing columns goes through SetColumns.
func (t *Table[T]) Columns() []Column[T] { return t.cols }

// Len is the size of the unfiltered dataset snapshot.
func (t *Table[T]) Len() int { return len(t.entries) }

// Options returns the table's feature configuration.
func (t *Table[T]) Options() Options { return t.opts }

func (t *Table[T]) columnByKey(key string) (Column[T], bool) {
	for i := range t.cols {
		if t.cols[i].Key == key {
			return t.cols[i], true
		}
	}
	return Column[T]{}, false
}

// valueOf resolves the pipeline value of one cell: the column extractor
// when set, else the field map entry, else nil.
func (t *Table[T]) valueOf(c Column[T], row T) any {
	if c.Value != nil {
		return c.Value(row)
	}
	if f, ok := t.fields[c.Key]; ok && f != nil {
		return f(row)
	}
	return nil
}

// CellValue returns the value the pipeline sees for row under columnKey.
func (t *Table[T]) CellValue(row T, columnKey string) any {
	c, ok := t.columnByKey(columnKey)
	if !ok {
		return nil
	}
	return t.valueOf(c, row)
}

// CellString is the canonical display/serialization form of a cell,
// shared by the renderer and export so they agree with the filter stage.
func (t *Table[T]) CellString(row T, columnKey string) string {
	return cellText(t.CellValue(row, columnKey))
}

func (t *Table[T]) rowByKey(key RowKey) (T, bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e.row, true
		}
	}
	var zero T
	return zero, false
}
