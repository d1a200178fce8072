package grid

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Align positions cell content within its column.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// RowKey is the stable identity of a row within one dataset snapshot.
// Selection and edit targeting use key identity, never slice positions,
// so rows keep their state while filtering and sorting move them around.
type RowKey string

// CellRef identifies a single cell by row identity and column key.
type CellRef struct {
	Row RowKey
	Col string
}

// Column describes one column of a table.
type Column[T any] struct {
	// Key must be unique within the column set.
	Key   string
	Title string

	// Width is a layout hint in cells; the engine never interprets it.
	Width int

	Sortable bool
	Editable bool
	Align    Align

	// Value, when set, overrides the table's field map for this column.
	// It should return a primitive (string, number, time) so the sort
	// stage can order it.
	Value func(row T) any

	// Style is opaque to the engine and is handed back untouched to
	// whoever renders the table.
	Style lipgloss.Style
}

// cellText is the canonical string form of a cell value. The filter
// stage matches against it, and CellString exposes it to collaborators.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", x)
	}
}

// numericValue reports v as a float64 when it carries any numeric Go
// type, so mixed int/float columns still order by subtraction.
func numericValue(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
