package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.resizing {
		return m.resizeOverlay()
	}

	switch m.view {
	case viewPicker:
		return m.viewPickerScreen()
	case viewDetail:
		return m.viewDocScreen(m.detailMD)
	case viewHelp:
		return m.viewDocScreen(renderMarkdown(helpMD, m.detailWidth()))
	}
	return m.viewGridScreen()
}

// viewGridScreen lays the grid chrome out on fixed rows: breadcrumb,
// context line, header strip, pageRows body rows, status, footer. The
// header and body row offsets are what handleMouse hit-tests against,
// so the block above the grid never grows or shrinks.
func (m appModel) viewGridScreen() string {
	scr := m.current()
	width := m.bodyWidth()

	gridBlock := strings.Split(scr.render(width), "\n")
	for len(gridBlock) < 1+pageRows {
		gridBlock = append(gridBlock, "")
	}

	var b strings.Builder
	b.WriteString(m.titleLine(width))
	b.WriteString("\n")
	b.WriteString(m.contextLine(width))
	b.WriteString("\n")
	b.WriteString(strings.Join(gridBlock, "\n"))
	b.WriteString("\n")
	b.WriteString(scr.statusLine())
	b.WriteString("\n")
	b.WriteString(m.footerLine())
	return b.String()
}

func (m appModel) titleLine(width int) string {
	left := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render("crewdesk · " + string(m.dataset))
	right := styleMuted().Render(appearanceLabel(appearanceProfile()))
	gap := width - xansi.StringWidth(left) - xansi.StringWidth(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) contextLine(width int) string {
	switch m.mode {
	case modeSearch:
		return renderInputLine(width, "search: "+m.input.View())
	case modeEdit:
		return renderInputLine(width, "edit: "+m.input.View())
	}
	if m.flashText != "" {
		if m.flashErr {
			return lipgloss.NewStyle().
				Foreground(colorFlashErrorFg).
				Background(colorFlashErrorBg).
				Render(" " + m.flashText + " ")
		}
		return lipgloss.NewStyle().Foreground(colorAccent).Render(m.flashText)
	}
	return ""
}

func (m appModel) footerLine() string {
	var help string
	switch m.mode {
	case modeSearch:
		help = "type to filter  enter: keep  esc: clear"
	case modeEdit:
		help = "enter: save  esc: discard"
	default:
		help = "/: search  s: sort  space: select  e: edit  enter: open  E: export  tab: dataset  ?: help  q: quit"
	}
	return lipgloss.NewStyle().Faint(true).Render(help)
}

func (m appModel) viewPickerScreen() string {
	title := lipgloss.NewStyle().Bold(true).Render("crewdesk")
	sub := styleMuted().Render("Workspace: " + m.store.Dir)
	footer := lipgloss.NewStyle().Faint(true).Render("enter: open  tab/j/k: move  q: quit")
	return strings.Join([]string{title, sub, m.pickerList.View(), footer}, "\n\n")
}

func (m appModel) viewDocScreen(body string) string {
	footer := lipgloss.NewStyle().Faint(true).Render("esc: back  q: back")
	return body + "\n\n" + footer
}

// resizeOverlay renders a stable full-height block while the terminal is
// being resized; re-laying the grid out on every WindowSizeMsg flickers
// badly in some terminals.
func (m appModel) resizeOverlay() string {
	w := m.bodyWidth()
	h := m.height
	if h < 3 {
		h = 3
	}
	msg := fmt.Sprintf("Resizing… (%dx%d)", m.width, m.height)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, styleMuted().Render(msg))
}

func (m appModel) bodyWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}
