package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"form:text"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+s"}, Action: "submit", Scopes: []string{"form:*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "form:text") {
		t.Fatalf("expected ctrl+k in form:text")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "form:control") {
		t.Fatalf("did not expect ctrl+k in form:control")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "screen:picker") {
		t.Fatalf("expected q to match wildcard scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "submit", "form:control") {
		t.Fatalf("expected prefix scope to match form:control")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "submit", "screen:picker") {
		t.Fatalf("prefix scope should not match screen:picker")
	}
}

func TestDefaultBindingsResolveByScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		scope string
		want  string
	}{
		{name: "enter on text row advances", msg: tea.KeyMsg{Type: tea.KeyEnter}, scope: ScopeFormText, want: ActionAdvance},
		{name: "enter on control activates", msg: tea.KeyMsg{Type: tea.KeyEnter}, scope: ScopeFormControl, want: ActionActivate},
		{name: "enter in picker applies", msg: tea.KeyMsg{Type: tea.KeyEnter}, scope: ScopePicker, want: ActionSelect},
		{name: "space toggles control", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, scope: ScopeFormControl, want: ActionToggle},
		{name: "tab moves focus", msg: tea.KeyMsg{Type: tea.KeyTab}, scope: ScopeFormText, want: ActionNext},
		{name: "shift+tab moves back", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, scope: ScopeFormControl, want: ActionPrev},
		{name: "ctrl+c quits anywhere", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, scope: ScopePicker, want: ActionQuit},
		{name: "esc closes picker", msg: tea.KeyMsg{Type: tea.KeyEsc}, scope: ScopePicker, want: ActionClose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := reg.ActionFor(tt.msg, tt.scope)
			if !ok || got != tt.want {
				t.Fatalf("ActionFor = %q, %v; want %q", got, ok, tt.want)
			}
		})
	}

	if _, ok := reg.ActionFor(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, ScopeFormText); ok {
		t.Fatalf("space must stay unbound on text rows")
	}
}

func TestHelpBindingsDedupAndSkipUndescribed(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	help := reg.HelpBindings(ScopeFormText)
	seen := map[string]bool{}
	for _, b := range help {
		h := b.Help()
		if h.Desc == "" {
			t.Fatalf("undescribed binding in help: %+v", h)
		}
		if seen[h.Desc] {
			t.Fatalf("duplicate help entry %q", h.Desc)
		}
		seen[h.Desc] = true
	}
	if !seen["submit"] || !seen["next"] {
		t.Fatalf("expected submit and next in help, got %v", seen)
	}
	if seen["toggle"] {
		t.Fatalf("control-only toggle should not show on text rows")
	}
	if help[1].Help().Key != "tab/down" {
		t.Fatalf("help key = %q", help[1].Help().Key)
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	defaults := DefaultKeyBindings()
	out := ApplyActionKeybindings(defaults, map[string][]string{
		ActionSubmit: {"ctrl+enter"},
		"unknown":    {"x"},
	})
	if len(out) != len(defaults) {
		t.Fatalf("len = %d, want %d", len(out), len(defaults))
	}
	reg := NewKeyRegistry(out)
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, ActionSubmit, ScopeFormText) {
		t.Fatalf("ctrl+s should be rebound away from submit")
	}
	if keys := DefaultKeybindingsByAction(out)[ActionSubmit]; len(keys) != 1 || keys[0] != "ctrl+enter" {
		t.Fatalf("submit keys = %v", keys)
	}
	if defaults[6].Keys[0] != "ctrl+s" {
		t.Fatalf("defaults mutated: %v", defaults[6].Keys)
	}
}
