package tui

import (
	"os"
	"strconv"
	"strings"

	"crewdesk/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The grid must stay readable on both light and dark terminal
// backgrounds, so every color is a lipgloss.AdaptiveColor pair and
// "faint" styling is applied only on dark backgrounds (faint text on
// light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Semantic colors used across the grid chrome. The appearance profiles
// in appearance.go overwrite these; the defaults are a neutral palette
// built from the xterm 256 ramp.
var (
	defaultColorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorSurfaceFg                               = defaultColorSurfaceFg

	defaultColorMuted lipgloss.TerminalColor = ac("240", "243")
	colorMuted                               = defaultColorMuted

	// Frozen header strip.
	defaultColorHeaderFg lipgloss.TerminalColor = ac("235", "254")
	colorHeaderFg                               = defaultColorHeaderFg
	defaultColorHeaderBg lipgloss.TerminalColor = ac("253", "237")
	colorHeaderBg                               = defaultColorHeaderBg

	// Sort indicator, column cursor, and other single-accent chrome.
	defaultColorAccent   lipgloss.TerminalColor = ac("27", "75")
	colorAccent                                 = defaultColorAccent
	defaultColorAccentFg lipgloss.TerminalColor = ac("255", "235")
	colorAccentFg                               = defaultColorAccentFg

	// Row the cursor is on.
	defaultColorCursorBg lipgloss.TerminalColor = ac("153", "24")
	colorCursorBg                               = defaultColorCursorBg
	defaultColorCursorFg lipgloss.TerminalColor = ac("235", "255")
	colorCursorFg                               = defaultColorCursorFg

	// Checked rows.
	defaultColorSelectedBg lipgloss.TerminalColor = ac("230", "58")
	colorSelectedBg                               = defaultColorSelectedBg
	defaultColorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorSelectedFg                               = defaultColorSelectedFg

	// Short-lived status flashes.
	defaultColorFlashErrorBg lipgloss.TerminalColor = ac("196", "160")
	colorFlashErrorBg                               = defaultColorFlashErrorBg
	defaultColorFlashErrorFg lipgloss.TerminalColor = ac("255", "255")
	colorFlashErrorFg                               = defaultColorFlashErrorFg

	// Search/edit input strip.
	defaultColorInputBg lipgloss.TerminalColor = ac("254", "236")
	colorInputBg                               = defaultColorInputBg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive session.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which
// is useful for non-interactive output but can accidentally disable
// colors in a full-screen app. Here we honor NO_COLOR, then a persisted
// per-workspace override, and otherwise follow the terminal.
func applyColorProfilePreference(st store.Store) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	if ui, err := st.LoadUIState(); err == nil {
		switch strings.ToLower(strings.TrimSpace(ui.ColorProfile)) {
		case "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		case "ansi":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "truecolor":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		}
	}

	// Start from termenv's best guess, then trust the env when TERM or
	// COLORTERM indicate stronger support than the detector reports.
	// Color probing under-reports on some terminals.
	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which can make
// lipgloss.AdaptiveColor pick the wrong variant. Priority:
// 1) CREWDESK_TUI_THEME=light|dark|auto
// 2) CREWDESK_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("CREWDESK_TUI_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		case "auto":
			// fallthrough to heuristics
		default:
			// Unknown value: ignore.
		}
	}

	if v := strings.TrimSpace(os.Getenv("CREWDESK_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			// Common xterm palette: 0-6 are dark colors, 7-15 light.
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
}
