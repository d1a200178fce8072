package tui

type view int

const (
	viewPicker view = iota
	viewGrid
	viewDetail
	viewHelp
)

// inputMode tells Update where keystrokes go while the grid is showing:
// straight to the table, into the search box, or into the cell editor.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeEdit
)

type resizeDoneMsg struct{ seq int }

type flashDoneMsg struct{ seq int }
