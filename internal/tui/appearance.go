package tui

import (
	"os"
	"strings"
	"sync"

	"crewdesk/internal/store"
)

type appearanceProfileID string

const (
	appearanceDefault   appearanceProfileID = "default"
	appearanceAlabaster appearanceProfileID = "alabaster"
	appearanceDracula   appearanceProfileID = "dracula"
	appearanceGruvbox   appearanceProfileID = "gruvbox"
)

var (
	appearanceMu      sync.RWMutex
	currentAppearance appearanceProfileID = appearanceDefault
	knownAppearances                      = []appearanceProfileID{appearanceDefault, appearanceAlabaster, appearanceDracula, appearanceGruvbox}
)

func resetAppearancePaletteToDefaults() {
	colorSurfaceFg = defaultColorSurfaceFg
	colorMuted = defaultColorMuted
	colorHeaderFg = defaultColorHeaderFg
	colorHeaderBg = defaultColorHeaderBg
	colorAccent = defaultColorAccent
	colorAccentFg = defaultColorAccentFg
	colorCursorBg = defaultColorCursorBg
	colorCursorFg = defaultColorCursorFg
	colorSelectedBg = defaultColorSelectedBg
	colorSelectedFg = defaultColorSelectedFg
	colorFlashErrorBg = defaultColorFlashErrorBg
	colorFlashErrorFg = defaultColorFlashErrorFg
	colorInputBg = defaultColorInputBg
}

// applyAppearancePreference picks the startup profile: the env override
// wins, then the profile persisted in the workspace UI state.
func applyAppearancePreference(st store.Store) {
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("CREWDESK_TUI_PROFILE"))); v != "" {
		setAppearanceProfile(appearanceProfileID(v))
		return
	}
	if ui, err := st.LoadUIState(); err == nil {
		if v := strings.ToLower(strings.TrimSpace(ui.Theme)); v != "" {
			setAppearanceProfile(appearanceProfileID(v))
			return
		}
	}
	setAppearanceProfile(appearanceDefault)
}

func setAppearanceProfile(id appearanceProfileID) {
	appearanceMu.Lock()
	defer appearanceMu.Unlock()

	switch id {
	case appearanceDefault:
		currentAppearance = appearanceDefault
		resetAppearancePaletteToDefaults()
	case appearanceAlabaster:
		currentAppearance = appearanceAlabaster
		resetAppearancePaletteToDefaults()

		// Alabaster (light-first, minimal, low-chroma). The dark variant
		// is Alabaster-inspired for OS-dark terminals.
		colorSurfaceFg = ac("#434343", "#cecece")
		colorMuted = ac("#777777", "#7a7a7a")
		colorHeaderFg = ac("#1f1f1f", "#f0f0f0")
		colorHeaderBg = ac("#eeeeee", "#1c1c1c")
		colorAccent = ac("#325cc0", "#5f87d7")
		colorAccentFg = ac("#ffffff", "#0f0f0f")
		colorCursorBg = ac("#dce6fb", "#1d2c4d")
		colorCursorFg = ac("#1f1f1f", "#f8f8f8")
		colorSelectedBg = ac("#f1ead2", "#3a3420")
		colorSelectedFg = ac("#1f1f1f", "#f8f8f8")
		colorFlashErrorBg = ac("#ff5f5f", "#ff5f5f")
		colorFlashErrorFg = ac("#ffffff", "#ffffff")
		colorInputBg = ac("#e8e8e8", "#262626")
	case appearanceDracula:
		currentAppearance = appearanceDracula
		resetAppearancePaletteToDefaults()

		// Dracula-ish, with a light palette so the profile stays readable
		// when the terminal follows OS light mode.
		colorSurfaceFg = ac("#282a36", "#f8f8f2")
		colorMuted = ac("#4b5563", "#9aa0b1")
		colorHeaderFg = ac("#282a36", "#f8f8f2")
		colorHeaderBg = ac("#d7d7cf", "#44475a")
		colorAccent = ac("#6c4aa6", "#bd93f9")
		colorAccentFg = ac("#f8f8f2", "#282a36")
		colorCursorBg = ac("#c4d9e9", "#2b3a55")
		colorCursorFg = ac("#282a36", "#f8f8f2")
		colorSelectedBg = ac("#e4d9c4", "#553f2b")
		colorSelectedFg = ac("#282a36", "#f8f8f2")
		colorFlashErrorBg = ac("#b91c1c", "#ff5555")
		colorFlashErrorFg = ac("#f8f8f2", "#282a36")
		colorInputBg = ac("#e6e6de", "#343746")
	case appearanceGruvbox:
		currentAppearance = appearanceGruvbox
		resetAppearancePaletteToDefaults()

		// Gruvbox light + dark.
		colorSurfaceFg = ac("#3c3836", "#ebdbb2")
		colorMuted = ac("#665c54", "#a89984")
		colorHeaderFg = ac("#3c3836", "#ebdbb2")
		colorHeaderBg = ac("#d5c4a1", "#3c3836")
		colorAccent = ac("#076678", "#83a598")
		colorAccentFg = ac("#fbf1c7", "#282828")
		colorCursorBg = ac("#c5dde2", "#204a51")
		colorCursorFg = ac("#3c3836", "#ebdbb2")
		colorSelectedBg = ac("#e5d3a4", "#504524")
		colorSelectedFg = ac("#3c3836", "#ebdbb2")
		colorFlashErrorBg = ac("#9d0006", "#cc241d")
		colorFlashErrorFg = ac("#fbf1c7", "#fbf1c7")
		colorInputBg = ac("#ebdbb2", "#32302f")
	default:
		// Unknown value: ignore.
	}
}

func appearanceProfile() appearanceProfileID {
	appearanceMu.RLock()
	id := currentAppearance
	appearanceMu.RUnlock()
	return id
}

func nextAppearanceProfile(id appearanceProfileID) appearanceProfileID {
	for i, known := range knownAppearances {
		if known == id {
			return knownAppearances[(i+1)%len(knownAppearances)]
		}
	}
	return appearanceDefault
}

func appearanceLabel(id appearanceProfileID) string {
	switch id {
	case appearanceAlabaster:
		return "Alabaster"
	case appearanceDracula:
		return "Dracula"
	case appearanceGruvbox:
		return "Gruvbox"
	default:
		return "Default"
	}
}

// persistAppearance stores the profile in the workspace UI state so the
// next session starts with it. Best effort.
func persistAppearance(st store.Store, id appearanceProfileID) {
	ui, err := st.LoadUIState()
	if err != nil {
		return
	}
	ui.Theme = string(id)
	_ = st.SaveUIState(ui)
}
