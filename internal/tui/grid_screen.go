package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crewdesk/internal/export"
	"crewdesk/internal/grid"
	"crewdesk/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	// Rows per grid page. Fixed rather than height-driven so page
	// numbers stay stable across terminal resizes.
	pageRows = 15

	// Horizontal cells per wheel notch.
	wheelStep = 4

	colGap     = "  "
	gutterCols = 2
)

// screen is the dataset-independent surface the app model drives. Each
// dataset gets one gridScreen instance behind this interface.
type screen interface {
	dataset() model.Dataset
	rowTotal() int
	refresh(ctx context.Context) error

	handleBrowseKey(key string) (bool, tea.Cmd)
	headerWheel(delta int) tea.Cmd
	bodyWheel(delta int) tea.Cmd
	releaseScroll(msg grid.ScrollReleaseMsg)

	searchQuery() string
	setSearch(q string)

	beginEdit() (seed string, ok bool)
	commitEdit(raw string)
	cancelEdit()

	activate()
	takeFlash() (text string, isErr bool, ok bool)
	takeDetail() (md string, ok bool)

	exportCSV(dir string) (path string, rows int, err error)

	render(width int) string
	statusLine() string
}

type gridScreen[T any] struct {
	ds    model.Dataset
	table *grid.Table[T]
	sync  *grid.ScrollSync

	cursorRow int
	cursorCol int

	load     func(ctx context.Context) ([]T, error)
	save     func(ctx context.Context, row T) error
	apply    func(row T, columnKey, raw string) (T, error)
	describe func(row T) string

	flashText string
	flashErr  bool
	hasFlash  bool

	detailMD  string
	hasDetail bool

	lastViewWidth int
}

func newGridScreen[T any](
	ds model.Dataset,
	cols []grid.Column[T],
	fields map[string]func(T) any,
	keyOf func(T, int) grid.RowKey,
	rows []T,
	load func(ctx context.Context) ([]T, error),
	save func(ctx context.Context, row T) error,
	apply func(row T, columnKey, raw string) (T, error),
	describe func(row T) string,
) *gridScreen[T] {
	s := &gridScreen[T]{
		ds:            ds,
		sync:          grid.NewScrollSync(0),
		load:          load,
		save:          save,
		apply:         apply,
		describe:      describe,
		lastViewWidth: 80,
	}
	s.table = grid.New(grid.Config[T]{
		Columns: cols,
		Fields:  fields,
		KeyOf:   keyOf,
		Rows:    rows,
		Options: grid.Options{
			Search:   true,
			Sort:     true,
			Select:   true,
			Paginate: true,
			Edit:     true,
			PageSize: pageRows,
		},
		Callbacks: grid.Callbacks[T]{
			RowActivate: func(row T, _ int) {
				s.detailMD = s.describe(row)
				s.hasDetail = true
			},
			CellCommit: s.onCellCommit,
			SortChange: func(columnKey string, dir grid.Direction) {
				if columnKey == "" {
					s.setFlash("sort cleared", false)
					return
				}
				s.setFlash(fmt.Sprintf("sort: %s %s", columnKey, dir), false)
			},
		},
	})
	return s
}

func (s *gridScreen[T]) dataset() model.Dataset { return s.ds }

func (s *gridScreen[T]) rowTotal() int { return s.table.Len() }

func (s *gridScreen[T]) refresh(ctx context.Context) error {
	rows, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.table.SetRows(rows)
	s.clampCursor()
	return nil
}

func (s *gridScreen[T]) setFlash(text string, isErr bool) {
	s.flashText = text
	s.flashErr = isErr
	s.hasFlash = true
}

func (s *gridScreen[T]) takeFlash() (string, bool, bool) {
	if !s.hasFlash {
		return "", false, false
	}
	text, isErr := s.flashText, s.flashErr
	s.flashText, s.flashErr, s.hasFlash = "", false, false
	return text, isErr, true
}

func (s *gridScreen[T]) takeDetail() (string, bool) {
	if !s.hasDetail {
		return "", false
	}
	md := s.detailMD
	s.detailMD, s.hasDetail = "", false
	return md, true
}

// onCellCommit applies a committed raw edit to the record and persists
// it. The engine already cleared the editing slot; all that is left is
// domain validation, the write, and reloading the snapshot.
func (s *gridScreen[T]) onCellCommit(row T, columnKey string, value any) {
	raw, _ := value.(string)
	updated, err := s.apply(row, columnKey, raw)
	if err != nil {
		s.setFlash(err.Error(), true)
		return
	}
	ctx := context.Background()
	if err := s.save(ctx, updated); err != nil {
		s.setFlash(err.Error(), true)
		return
	}
	if err := s.refresh(ctx); err != nil {
		s.setFlash(err.Error(), true)
		return
	}
	s.setFlash("saved "+columnKey, false)
}

func (s *gridScreen[T]) handleBrowseKey(key string) (bool, tea.Cmd) {
	switch key {
	case "j", "down":
		s.moveCursorRow(1)
	case "k", "up":
		s.moveCursorRow(-1)
	case "h", "left":
		return true, s.moveCursorCol(-1)
	case "l", "right":
		return true, s.moveCursorCol(1)
	case "g", "home":
		s.cursorRow = 0
	case "G", "end":
		s.cursorRow = s.pageRowCount() - 1
		if s.cursorRow < 0 {
			s.cursorRow = 0
		}
	case "s":
		cols := s.table.Columns()
		if s.cursorCol < len(cols) {
			s.table.CycleSort(cols[s.cursorCol].Key)
		}
	case " ":
		if key0, ok := s.cursorKey(); ok {
			s.table.ToggleRow(key0)
		}
	case "a":
		s.table.ToggleSelectAll()
	case "c":
		s.table.ClearSelection()
	case "[", "pgup":
		s.table.PrevPage()
		s.clampCursor()
	case "]", "pgdown":
		s.table.NextPage()
		s.clampCursor()
	default:
		return false, nil
	}
	return true, nil
}

func (s *gridScreen[T]) moveCursorRow(delta int) {
	n := s.pageRowCount()
	if n == 0 {
		s.cursorRow = 0
		return
	}
	s.cursorRow += delta
	if s.cursorRow < 0 {
		s.cursorRow = 0
	}
	if s.cursorRow > n-1 {
		s.cursorRow = n - 1
	}
}

// moveCursorCol shifts the column cursor and, when the column sits
// outside the viewport, drags the shared horizontal offset along via the
// body surface so the header strip follows.
func (s *gridScreen[T]) moveCursorCol(delta int) tea.Cmd {
	cols := s.table.Columns()
	if len(cols) == 0 {
		return nil
	}
	s.cursorCol += delta
	if s.cursorCol < 0 {
		s.cursorCol = 0
	}
	if s.cursorCol > len(cols)-1 {
		s.cursorCol = len(cols) - 1
	}
	return s.scrollCursorColIntoView()
}

func (s *gridScreen[T]) scrollCursorColIntoView() tea.Cmd {
	start, end := s.columnSpan(s.cursorCol)
	avail := s.lastViewWidth - gutterCols
	if avail < 1 {
		return nil
	}
	off := s.sync.Offset()
	target := off
	if start < off {
		target = start
	} else if end > off+avail {
		target = end - avail
	}
	return s.scrollBodyTo(target)
}

func (s *gridScreen[T]) columnSpan(i int) (start, end int) {
	cols := s.table.Columns()
	x := 0
	for c := 0; c < i && c < len(cols); c++ {
		x += cellWidth(cols[c].Width) + len(colGap)
	}
	if i < len(cols) {
		return x, x + cellWidth(cols[i].Width)
	}
	return x, x
}

func (s *gridScreen[T]) contentWidth() int {
	cols := s.table.Columns()
	w := 0
	for i, c := range cols {
		if i > 0 {
			w += len(colGap)
		}
		w += cellWidth(c.Width)
	}
	return w
}

func (s *gridScreen[T]) maxOffset() int {
	m := s.contentWidth() - (s.lastViewWidth - gutterCols)
	if m < 0 {
		return 0
	}
	return m
}

func (s *gridScreen[T]) headerWheel(delta int) tea.Cmd {
	target := clampOffset(s.sync.Offset()+delta*wheelStep, s.maxOffset())
	if target == s.sync.Offset() {
		return nil
	}
	_, cmd := s.sync.HeaderScrolled(target)
	return cmd
}

func (s *gridScreen[T]) bodyWheel(delta int) tea.Cmd {
	target := clampOffset(s.sync.Offset()+delta*wheelStep, s.maxOffset())
	if target == s.sync.Offset() {
		return nil
	}
	_, cmd := s.sync.BodyScrolled(target)
	return cmd
}

func (s *gridScreen[T]) scrollBodyTo(target int) tea.Cmd {
	target = clampOffset(target, s.maxOffset())
	if target == s.sync.Offset() {
		return nil
	}
	_, cmd := s.sync.BodyScrolled(target)
	return cmd
}

func (s *gridScreen[T]) releaseScroll(msg grid.ScrollReleaseMsg) {
	s.sync.Release(msg)
}

func clampOffset(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func (s *gridScreen[T]) searchQuery() string { return s.table.SearchQuery() }

func (s *gridScreen[T]) setSearch(q string) {
	s.table.SetSearch(q)
	s.clampCursor()
}

func (s *gridScreen[T]) beginEdit() (string, bool) {
	cols := s.table.Columns()
	if s.cursorCol >= len(cols) {
		return "", false
	}
	col := cols[s.cursorCol]
	if !col.Editable {
		s.setFlash(col.Key+" is read-only", true)
		return "", false
	}
	v := s.table.Visible()
	if s.cursorRow >= len(v.Rows) {
		return "", false
	}
	s.table.BeginEdit(v.Keys[s.cursorRow], col.Key)
	if _, ok := s.table.EditingCell(); !ok {
		return "", false
	}
	return s.table.CellString(v.Rows[s.cursorRow], col.Key), true
}

func (s *gridScreen[T]) commitEdit(raw string) { s.table.CommitEdit(raw) }

func (s *gridScreen[T]) cancelEdit() { s.table.CancelEdit() }

func (s *gridScreen[T]) activate() { s.table.ActivateRow(s.cursorRow) }

func (s *gridScreen[T]) cursorKey() (grid.RowKey, bool) {
	v := s.table.Visible()
	if s.cursorRow >= len(v.Keys) {
		return "", false
	}
	return v.Keys[s.cursorRow], true
}

func (s *gridScreen[T]) pageRowCount() int {
	return len(s.table.Visible().Rows)
}

func (s *gridScreen[T]) clampCursor() {
	n := s.pageRowCount()
	if n == 0 {
		s.cursorRow = 0
		return
	}
	if s.cursorRow > n-1 {
		s.cursorRow = n - 1
	}
}

// exportCSV writes the current filtered+sorted dataset (every page) to a
// timestamped file in the workspace directory.
func (s *gridScreen[T]) exportCSV(dir string) (string, int, error) {
	name := fmt.Sprintf("%s-%s.csv", s.ds, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, err
	}
	if err := export.CSV(f, s.table, 0); err != nil {
		f.Close()
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		return "", 0, err
	}
	return path, len(s.table.FilteredSorted()), nil
}

// render draws the frozen header strip plus the current page. Both are
// cut with the shared horizontal offset so they always stay aligned; the
// two-cell selection gutter never scrolls.
func (s *gridScreen[T]) render(width int) string {
	if width < 20 {
		width = 20
	}
	s.lastViewWidth = width

	v := s.table.Visible()
	cols := s.table.Columns()
	off := clampOffset(s.sync.Offset(), s.maxOffset())
	avail := width - gutterCols

	var b strings.Builder
	b.WriteString(s.renderHeader(cols, off, avail))
	b.WriteString("\n")

	if len(v.Rows) == 0 {
		b.WriteString(s.renderEmpty(width))
		return b.String()
	}

	for i, row := range v.Rows {
		b.WriteString(s.renderRow(cols, row, v.Keys[i], i, off, avail))
		if i < len(v.Rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *gridScreen[T]) renderHeader(cols []grid.Column[T], off, avail int) string {
	sortKey, sortDir, sorted := s.table.Sort()

	// Styling is applied per cell, never around the joined line: a
	// wrapped style would be cancelled at the first inner ANSI reset.
	base := lipgloss.NewStyle().Foreground(colorHeaderFg).Background(colorHeaderBg).Bold(true)
	cursor := lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true)

	cells := make([]string, 0, len(cols))
	for i, c := range cols {
		title := c.Title
		if sorted && c.Key == sortKey {
			title += " " + sortGlyph(sortDir)
		}
		cell := padCell(title, cellWidth(c.Width), c.Align)
		if i == s.cursorCol {
			cells = append(cells, cursor.Render(cell))
		} else {
			cells = append(cells, base.Render(cell))
		}
	}

	line := xansi.Cut(strings.Join(cells, base.Render(colGap)), off, off+avail)
	tail := avail - xansi.StringWidth(line)
	if tail < 0 {
		tail = 0
	}
	return base.Render(strings.Repeat(" ", gutterCols)) + line + base.Render(strings.Repeat(" ", tail))
}

func (s *gridScreen[T]) renderRow(cols []grid.Column[T], row T, key grid.RowKey, idx, off, avail int) string {
	isCursor := idx == s.cursorRow
	selected := s.table.IsSelected(key)

	var rowStyle lipgloss.Style
	highlighted := true
	switch {
	case isCursor:
		rowStyle = lipgloss.NewStyle().Foreground(colorCursorFg).Background(colorCursorBg)
	case selected:
		rowStyle = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
	default:
		highlighted = false
	}

	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		cell := padCell(s.table.CellString(row, c.Key), cellWidth(c.Width), c.Align)
		// The per-column style only applies on plain rows; the row
		// highlight wins on the cursor/selected rows, and mixing the two
		// would drop the row background at the column's ANSI reset.
		if !highlighted {
			cell = c.Style.Render(cell)
		}
		cells = append(cells, cell)
	}
	line := xansi.Cut(strings.Join(cells, colGap), off, off+avail)

	gutter := "  "
	if selected {
		gutter = "* "
	}
	if isCursor {
		gutter = "> "
	}

	if highlighted {
		return rowStyle.Render(gutter + padLine(line, avail))
	}
	return gutter + padLine(line, avail)
}

func (s *gridScreen[T]) renderEmpty(width int) string {
	var hint string
	if s.table.Len() == 0 {
		hint = "workspace is empty; run: crewdesk seed"
	} else {
		hint = fmt.Sprintf("no %s match %q", s.ds, s.table.SearchQuery())
	}
	return styleMuted().Width(width).Align(lipgloss.Center).Render(hint)
}

func (s *gridScreen[T]) statusLine() string {
	v := s.table.Visible()

	parts := []string{
		fmt.Sprintf("%d/%d %s", v.FilteredCount, s.table.Len(), s.ds),
		fmt.Sprintf("page %d/%d", s.table.CurrentPage(), v.TotalPages),
	}
	if n := s.table.SelectionCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if key, dir, ok := s.table.Sort(); ok {
		parts = append(parts, key+" "+sortGlyph(dir))
	}
	if q := s.table.SearchQuery(); q != "" {
		parts = append(parts, fmt.Sprintf("filter %q", q))
	}
	if off := s.sync.Offset(); off > 0 {
		parts = append(parts, fmt.Sprintf("col+%d", off))
	}
	return styleMuted().Render(strings.Join(parts, "  "))
}

func sortGlyph(dir grid.Direction) string {
	if dir == grid.Descending {
		return "v"
	}
	return "^"
}

func cellWidth(w int) int {
	if w <= 0 {
		return 12
	}
	return w
}

// padCell fits text into an exact cell width, truncating long values
// with an ellipsis.
func padCell(text string, width int, align grid.Align) string {
	tw := xansi.StringWidth(text)
	if tw > width {
		if width <= 1 {
			return xansi.Cut(text, 0, width)
		}
		return xansi.Cut(text, 0, width-1) + "…"
	}
	pad := width - tw
	switch align {
	case grid.AlignEnd:
		return strings.Repeat(" ", pad) + text
	case grid.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
	default:
		return text + strings.Repeat(" ", pad)
	}
}

// padLine right-pads a cut line to the viewport width so row background
// styling covers the full row.
func padLine(line string, width int) string {
	lw := xansi.StringWidth(line)
	if lw >= width {
		return line
	}
	return line + strings.Repeat(" ", width-lw)
}
