package core

import "strings"

// Actions understood by the form UI.
const (
	ActionQuit         = "quit"
	ActionNext         = "next"
	ActionPrev         = "prev"
	ActionAdvance      = "advance"
	ActionActivate     = "activate"
	ActionToggle       = "toggle"
	ActionSubmit       = "submit"
	ActionAddFabric    = "add-fabric"
	ActionRemoveFabric = "remove-fabric"
	ActionNavigate     = "navigate"
	ActionToggleSelect = "toggle-select"
	ActionSelect       = "select"
	ActionClose        = "close"
)

// Scopes. Text rows keep printable keys (and space) for typing.
const (
	ScopeFormText    = "form:text"
	ScopeFormControl = "form:control"
	ScopePicker      = "screen:picker"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"tab", "down"}, Action: ActionNext, Description: "next", Scopes: []string{"form:*"}},
		{Keys: []string{"shift+tab", "up"}, Action: ActionPrev, Description: "prev", Scopes: []string{"form:*"}},
		{Keys: []string{"enter"}, Action: ActionActivate, Description: "open/press", Scopes: []string{ScopeFormControl}},
		{Keys: []string{"enter"}, Action: ActionAdvance, Scopes: []string{ScopeFormText}},
		{Keys: []string{"space", "left", "right"}, Action: ActionToggle, Description: "toggle", Scopes: []string{ScopeFormControl}},
		{Keys: []string{"ctrl+s"}, Action: ActionSubmit, Description: "submit", Scopes: []string{"form:*"}},
		{Keys: []string{"ctrl+n"}, Action: ActionAddFabric, Description: "add fabric", Scopes: []string{"form:*"}},
		{Keys: []string{"ctrl+d"}, Action: ActionRemoveFabric, Description: "remove fabric", Scopes: []string{"form:*"}},
		{Keys: []string{"up", "down"}, Action: ActionNavigate, Description: "navigate", Scopes: []string{ScopePicker}},
		{Keys: []string{"space"}, Action: ActionToggleSelect, Description: "toggle", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "apply", Scopes: []string{ScopePicker}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "cancel", Scopes: []string{ScopePicker}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Unknown actions are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
