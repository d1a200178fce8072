package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestMarkdownStyle_MDStyleOverrideWins(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	t.Setenv("CREWDESK_TUI_MD_STYLE", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("CREWDESK_TUI_MD_STYLE", "notty")
	if got := markdownStyle(); got != "notty" {
		t.Fatalf("expected notty; got %q", got)
	}
}

func TestMarkdownStyle_NoColorForcesNotty(t *testing.T) {
	t.Setenv("CREWDESK_TUI_MD_STYLE", "")
	t.Setenv("NO_COLOR", "1")

	if got := markdownStyle(); got != "notty" {
		t.Fatalf("expected notty under NO_COLOR; got %q", got)
	}
}

func TestMarkdownStyle_FollowsBackground(t *testing.T) {
	t.Setenv("CREWDESK_TUI_MD_STYLE", "")
	t.Setenv("NO_COLOR", "")

	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(oldBG) })

	lipgloss.SetHasDarkBackground(true)
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
	lipgloss.SetHasDarkBackground(false)
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}
}

func TestRenderMarkdownIsDeterministicAndCached(t *testing.T) {
	t.Setenv("CREWDESK_TUI_MD_STYLE", "notty")

	out1 := renderMarkdown("# Venue Check\n\nSome body text.", 60)
	if !strings.Contains(out1, "Venue Check") {
		t.Fatalf("expected heading text in output:\n%s", out1)
	}
	out2 := renderMarkdown("# Venue Check\n\nSome body text.", 60)
	if out1 != out2 {
		t.Fatalf("expected identical output from the cached renderer")
	}
}

func TestRenderMarkdownEmptyInput(t *testing.T) {
	if got := renderMarkdown("   \n", 60); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
