package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"crewdesk/internal/grid"
	"crewdesk/internal/model"
	"crewdesk/internal/store"
)

// openSeededApp builds an appModel over a freshly seeded workspace and
// delivers the initial window size.
func openSeededApp(t *testing.T) (appModel, store.Store, *store.DB) {
	t.Helper()
	asciiColors(t)

	st := store.Store{Dir: t.TempDir()}
	ctx := context.Background()
	db, err := st.Open(ctx)
	if err != nil {
		t.Fatalf("open workspace db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Seed(ctx, false); err != nil {
		t.Fatalf("seed demo data: %v", err)
	}

	m, err := newAppModel(st, db, model.DatasetEmployees)
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return mm.(appModel), st, db
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		mm, _ := m.Update(msg)
		m = mm.(appModel)
	}
	return m
}

func TestAppSearchFiltersLive(t *testing.T) {
	m, _, _ := openSeededApp(t)

	m = press(t, m, "/")
	if m.mode != modeSearch {
		t.Fatalf("expected search mode after /")
	}
	m = press(t, m, "finance")

	view := m.View()
	if !strings.Contains(view, "Jonas Weber") {
		t.Fatalf("expected a Finance employee visible, got:\n%s", view)
	}
	if strings.Contains(view, "Maya") {
		t.Fatalf("expected non-matching rows hidden, got:\n%s", view)
	}
	if !strings.Contains(view, "2/8 employees") {
		t.Fatalf("expected filtered count in status, got:\n%s", view)
	}

	m = press(t, m, "enter")
	if m.mode != modeBrowse {
		t.Fatalf("expected enter to leave search mode")
	}
	if q := m.current().searchQuery(); q != "finance" {
		t.Fatalf("expected filter kept after enter, got %q", q)
	}

	m = press(t, m, "/", "esc")
	if q := m.current().searchQuery(); q != "" {
		t.Fatalf("expected esc to clear the filter, got %q", q)
	}
}

func TestAppTabCyclesDatasetsAndPersists(t *testing.T) {
	m, st, _ := openSeededApp(t)

	m = press(t, m, "tab")
	if m.dataset != model.DatasetEvents {
		t.Fatalf("dataset = %q, want events", m.dataset)
	}
	m = press(t, m, "tab")
	if m.dataset != model.DatasetExpenses {
		t.Fatalf("dataset = %q, want expenses", m.dataset)
	}

	ui, err := st.LoadUIState()
	if err != nil {
		t.Fatalf("load ui state: %v", err)
	}
	if ui.Dataset != "expenses" {
		t.Fatalf("persisted dataset = %q, want expenses", ui.Dataset)
	}

	m = press(t, m, "tab")
	if m.dataset != model.DatasetEmployees {
		t.Fatalf("dataset = %q, want wrap to employees", m.dataset)
	}
	if !strings.Contains(m.View(), "crewdesk · employees") {
		t.Fatalf("expected breadcrumb to follow the dataset")
	}
}

func TestAppEditCommitPersists(t *testing.T) {
	m, _, db := openSeededApp(t)

	m = press(t, m, "l") // column cursor onto name
	m = press(t, m, "e")
	if m.mode != modeEdit {
		t.Fatalf("expected edit mode")
	}
	if got := m.input.Value(); got != "Maya Lindholm" {
		t.Fatalf("edit box seeded with %q", got)
	}

	m.input.SetValue("Maya Holm")
	m = press(t, m, "enter")
	if m.mode != modeBrowse {
		t.Fatalf("expected commit to leave edit mode")
	}
	if m.flashErr || m.flashText != "saved name" {
		t.Fatalf("flash = %q (err=%v)", m.flashText, m.flashErr)
	}

	rows, err := db.Employees(context.Background())
	if err != nil {
		t.Fatalf("load employees: %v", err)
	}
	if rows[0].Name != "Maya Holm" {
		t.Fatalf("persisted name = %q", rows[0].Name)
	}
	if !strings.Contains(m.View(), "Maya Holm") {
		t.Fatalf("expected grid to show the refreshed snapshot")
	}
}

func TestAppEditInvalidValueKeepsRecord(t *testing.T) {
	m, _, db := openSeededApp(t)

	m = press(t, m, "l", "l", "l", "l", "l") // salary column
	m = press(t, m, "e")
	m.input.SetValue("-50")
	m = press(t, m, "enter")

	if !m.flashErr {
		t.Fatalf("expected an error flash, got %q", m.flashText)
	}
	rows, err := db.Employees(context.Background())
	if err != nil {
		t.Fatalf("load employees: %v", err)
	}
	if rows[0].Salary != 58000 {
		t.Fatalf("salary changed despite the error: %v", rows[0].Salary)
	}
}

func TestAppEditEscDiscards(t *testing.T) {
	m, _, db := openSeededApp(t)

	m = press(t, m, "l", "e")
	m.input.SetValue("Ignored")
	m = press(t, m, "esc")

	if m.mode != modeBrowse {
		t.Fatalf("expected esc to leave edit mode")
	}
	if m.flashText != "" {
		t.Fatalf("expected no flash on cancel, got %q", m.flashText)
	}
	rows, err := db.Employees(context.Background())
	if err != nil {
		t.Fatalf("load employees: %v", err)
	}
	if rows[0].Name != "Maya Lindholm" {
		t.Fatalf("cancel must not write, got %q", rows[0].Name)
	}
}

func TestAppWheelAtHeaderScrollsGrid(t *testing.T) {
	m, _, _ := openSeededApp(t)
	_ = m.View() // establish the viewport width

	mm, _ := m.Update(tea.MouseMsg{Y: gridHeaderY, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = mm.(appModel)
	if got := m.employees.sync.Offset(); got != wheelStep {
		t.Fatalf("offset = %d, want %d", got, wheelStep)
	}

	lines := strings.Split(m.View(), "\n")
	header, first := lines[gridHeaderY], lines[gridBodyTop]
	if strings.Contains(header, "ID") {
		t.Fatalf("expected first column scrolled out of the header: %q", header)
	}
	if !strings.Contains(header, "Name") || !strings.Contains(first, "Maya Lindholm") {
		t.Fatalf("expected remaining columns aligned:\n%q\n%q", header, first)
	}
	if !strings.Contains(lines[len(lines)-2], "col+4") {
		t.Fatalf("expected scroll offset in status: %q", lines[len(lines)-2])
	}
}

func TestAppScrollReleaseReachesBackgroundScreen(t *testing.T) {
	m, _, _ := openSeededApp(t)
	_ = m.View()

	mm, _ := m.Update(tea.MouseMsg{Y: gridHeaderY, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = mm.(appModel)
	if _, driving := m.employees.sync.Driving(); !driving {
		t.Fatalf("expected header to hold the scroll lock")
	}

	// Switch away before the release tick lands; the release must still
	// unlock the employees screen.
	m = press(t, m, "tab")
	mm, _ = m.Update(grid.ScrollReleaseMsg{Surface: grid.SurfaceHeader, Seq: 1})
	m = mm.(appModel)
	m = press(t, m, "tab", "tab")

	if _, driving := m.employees.sync.Driving(); driving {
		t.Fatalf("expected the scroll lock released after the tick")
	}
	mm, _ = m.Update(tea.MouseMsg{Y: gridBodyTop, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = mm.(appModel)
	if got := m.employees.sync.Offset(); got != 2*wheelStep {
		t.Fatalf("offset = %d, want %d", got, 2*wheelStep)
	}
}

func TestAppRowActivateOpensDetail(t *testing.T) {
	m, _, _ := openSeededApp(t)

	m = press(t, m, "enter")
	if m.view != viewDetail {
		t.Fatalf("expected detail view after enter")
	}
	if !strings.Contains(m.detailMD, "Maya") {
		t.Fatalf("expected the cursor row's detail, got:\n%s", m.detailMD)
	}

	m = press(t, m, "esc")
	if m.view != viewGrid || m.detailMD != "" {
		t.Fatalf("expected esc back to the grid")
	}
}

func TestAppExportKeyWritesWorkspaceFile(t *testing.T) {
	m, st, _ := openSeededApp(t)

	m = press(t, m, "E")
	if m.flashErr {
		t.Fatalf("export flashed an error: %q", m.flashText)
	}
	if !strings.Contains(m.flashText, "exported 8 rows") {
		t.Fatalf("flash = %q", m.flashText)
	}
	matches, err := filepath.Glob(filepath.Join(st.Dir, "employees-*.csv"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected one export file, got %v", matches)
	}
}

func TestAppResizeOverlayDebounce(t *testing.T) {
	m, _, _ := openSeededApp(t)

	// The opener already delivered the initial WindowSizeMsg.
	if m.resizing || m.resizeSeq != 0 {
		t.Fatalf("initial sizing must not trigger the overlay")
	}

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 81, Height: 25})
	m = mm.(appModel)
	if !m.resizing || m.resizeSeq != 1 {
		t.Fatalf("expected resizing=true seq=1, got %v seq=%d", m.resizing, m.resizeSeq)
	}
	if !strings.Contains(m.View(), "Resizing") {
		t.Fatalf("expected the resize overlay")
	}

	mm, _ = m.Update(resizeDoneMsg{seq: 0})
	m = mm.(appModel)
	if !m.resizing {
		t.Fatalf("stale resizeDoneMsg must not clear the overlay")
	}
	mm, _ = m.Update(resizeDoneMsg{seq: 1})
	m = mm.(appModel)
	if m.resizing {
		t.Fatalf("expected the overlay cleared by the matching seq")
	}
}

func TestAppPickerSelectsDataset(t *testing.T) {
	m, _, _ := openSeededApp(t)

	m = press(t, m, "esc")
	if m.view != viewPicker {
		t.Fatalf("expected esc to open the picker")
	}
	if !strings.Contains(m.View(), "employees (8)") {
		t.Fatalf("expected dataset counts in the picker:\n%s", m.View())
	}

	m = press(t, m, "j", "enter")
	if m.view != viewGrid || m.dataset != model.DatasetEvents {
		t.Fatalf("expected events selected, got view=%v dataset=%q", m.view, m.dataset)
	}
}

func TestAppQuitKeys(t *testing.T) {
	m, _, _ := openSeededApp(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected q to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected a QuitMsg from q")
	}

	// ctrl+c quits from any mode, including live inputs.
	m = press(t, m, "/")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected ctrl+c to quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected a QuitMsg from ctrl+c")
	}
}

func TestAppHelpScreenToggles(t *testing.T) {
	m, _, _ := openSeededApp(t)

	m = press(t, m, "?")
	if m.view != viewHelp {
		t.Fatalf("expected help view")
	}
	m = press(t, m, "q")
	if m.view != viewGrid {
		t.Fatalf("expected q to leave help")
	}
}

func TestAppThemeKeyCyclesAndPersists(t *testing.T) {
	m, st, _ := openSeededApp(t)
	setAppearanceProfile(appearanceDefault)
	t.Cleanup(func() { setAppearanceProfile(appearanceDefault) })

	m = press(t, m, "T")
	if got := appearanceProfile(); got != appearanceAlabaster {
		t.Fatalf("profile = %q, want alabaster", got)
	}
	if !strings.Contains(m.flashText, "Alabaster") {
		t.Fatalf("flash = %q", m.flashText)
	}

	ui, err := st.LoadUIState()
	if err != nil {
		t.Fatalf("load ui state: %v", err)
	}
	if ui.Theme != "alabaster" {
		t.Fatalf("persisted theme = %q", ui.Theme)
	}
}

func TestAppFlashClearsOnMatchingSeqOnly(t *testing.T) {
	m, _, _ := openSeededApp(t)

	m = press(t, m, "E")
	if m.flashText == "" {
		t.Fatalf("expected a flash after export")
	}

	mm, _ := m.Update(flashDoneMsg{seq: m.flashSeq - 1})
	m = mm.(appModel)
	if m.flashText == "" {
		t.Fatalf("stale flashDoneMsg must not clear the flash")
	}

	mm, _ = m.Update(flashDoneMsg{seq: m.flashSeq})
	m = mm.(appModel)
	if m.flashText != "" {
		t.Fatalf("expected the flash cleared, got %q", m.flashText)
	}
}
