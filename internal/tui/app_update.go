package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/grid"
)

const flashFor = 2500 * time.Millisecond

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		// Don't show the resize overlay on startup; only after we've seen
		// an initial size.
		if !m.seenWindowSize {
			m.seenWindowSize = true
			m.resizing = false
			return m, nil
		}
		m.resizing = true
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg { return resizeDoneMsg{seq: seq} })

	case resizeDoneMsg:
		// Debounce: only clear if this corresponds to the latest resize seq.
		if msg.seq == m.resizeSeq {
			m.resizing = false
		}
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
			m.flashErr = false
		}
		return m, nil

	case grid.ScrollReleaseMsg:
		// Every screen gets the release: a tick scheduled before a dataset
		// switch must still unlock the screen that scheduled it.
		m.employees.releaseScroll(msg)
		m.events.releaseScroll(msg)
		m.expenses.releaseScroll(msg)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *appModel) resizeLists() {
	lw := m.width - 4
	if lw < 20 {
		lw = 20
	}
	lh := m.height - 6
	if lh < 5 {
		lh = 5
	}
	m.pickerList.SetSize(lw, lh)
}

// handleMouse pans the grid horizontally with the wheel. The row under
// the pointer decides which surface drives: the frozen header strip or
// the body. Everything else about the mouse is ignored.
func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != viewGrid || m.mode != modeBrowse {
		return m, nil
	}
	var delta int
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		delta = -1
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		delta = 1
	default:
		return m, nil
	}
	switch {
	case msg.Y == gridHeaderY:
		return m, m.current().headerWheel(delta)
	case msg.Y >= gridBodyTop && msg.Y < gridBodyTop+pageRows:
		return m, m.current().bodyWheel(delta)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While an input is live, every key belongs to it.
	switch m.mode {
	case modeSearch:
		return m.updateSearch(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}

	switch m.view {
	case viewPicker:
		return m.updatePicker(msg)
	case viewDetail, viewHelp:
		switch msg.String() {
		case "esc", "q", "enter":
			m.view = viewGrid
			m.detailMD = ""
		}
		return m, nil
	}

	return m.updateGridBrowse(msg)
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Abandon the search entirely: box and filter both clear.
		m.input.Blur()
		m.input.SetValue("")
		m.current().setSearch("")
		m.mode = modeBrowse
		return m, nil
	case "enter":
		m.input.Blur()
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live filtering: each keystroke narrows the grid immediately.
	m.current().setSearch(m.input.Value())
	return m, cmd
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.current().cancelEdit()
		m.input.Blur()
		m.input.SetValue("")
		m.mode = modeBrowse
		return m, nil
	case "enter":
		raw := m.input.Value()
		m.input.Blur()
		m.input.SetValue("")
		m.mode = modeBrowse
		m.current().commitEdit(raw)
		return m.pickupScreen(nil)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		if it, ok := m.pickerList.SelectedItem().(datasetItem); ok {
			m.switchDataset(it.ds)
		}
		m.view = viewGrid
		return m, nil
	}
	var cmd tea.Cmd
	m.pickerList, cmd = m.pickerList.Update(msg)
	return m, cmd
}

func (m appModel) updateGridBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scr := m.current()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.refreshPicker()
		m.view = viewPicker
		return m, nil
	case "tab":
		m.switchDataset(m.nextDataset())
		return m, nil
	case "/":
		m.mode = modeSearch
		m.input.SetValue(scr.searchQuery())
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		seed, ok := scr.beginEdit()
		if !ok {
			return m.pickupScreen(nil)
		}
		m.mode = modeEdit
		m.input.SetValue(seed)
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink
	case "enter":
		scr.activate()
		return m.pickupScreen(nil)
	case "E":
		path, rows, err := scr.exportCSV(m.store.Dir)
		if err != nil {
			return m.flash("export failed: "+err.Error(), true)
		}
		return m.flash(fmt.Sprintf("exported %d rows to %s", rows, path), false)
	case "r":
		if err := scr.refresh(context.Background()); err != nil {
			return m.flash("reload failed: "+err.Error(), true)
		}
		m.refreshPicker()
		return m.flash("reloaded "+string(scr.dataset()), false)
	case "T":
		next := nextAppearanceProfile(appearanceProfile())
		setAppearanceProfile(next)
		persistAppearance(m.store, next)
		return m.flash("theme: "+appearanceLabel(next), false)
	case "?":
		m.view = viewHelp
		return m, nil
	}

	handled, cmd := scr.handleBrowseKey(msg.String())
	if handled {
		return m.pickupScreen(cmd)
	}
	return m, nil
}

// pickupScreen collects whatever the last engine call left behind on the
// active screen: a detail page to open or a flash to show. Callbacks run
// synchronously inside the engine call, so by the time control returns
// here the screen state is final.
func (m appModel) pickupScreen(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	scr := m.current()
	if md, ok := scr.takeDetail(); ok {
		m.detailMD = renderMarkdown(md, m.detailWidth())
		m.view = viewDetail
	}
	if text, isErr, ok := scr.takeFlash(); ok {
		fm, fcmd := m.flash(text, isErr)
		if cmd != nil {
			return fm, tea.Batch(cmd, fcmd)
		}
		return fm, fcmd
	}
	return m, cmd
}

func (m appModel) flash(text string, isErr bool) (appModel, tea.Cmd) {
	m.flashText = text
	m.flashErr = isErr
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(flashFor, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func (m appModel) detailWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 78
	}
	if w > 100 {
		w = 100
	}
	return w
}
