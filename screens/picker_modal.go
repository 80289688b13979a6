package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/orderform/core"
)

type PickerItem struct {
	ID    string
	Label string
	Desc  string
}

// PickerModal lets the user choose one option, or several when multi is set.
// onApply receives the chosen IDs in option order.
type PickerModal struct {
	title   string
	scope   string
	picker  *core.Picker
	keys    *core.KeyRegistry
	styles  core.Styles
	onApply func(ids []string) tea.Msg
}

func NewPickerModal(title string, items []PickerItem, multi bool, selected []string, keys *core.KeyRegistry, st core.Styles, onApply func(ids []string) tea.Msg) *PickerModal {
	listItems := make([]core.PickerItem, 0, len(items))
	for _, it := range items {
		listItems = append(listItems, core.PickerItem{
			ID:     it.ID,
			Label:  it.Label,
			Meta:   it.Desc,
			Search: it.Label + " " + it.Desc,
		})
	}
	p := core.NewPicker(title, listItems)
	p.SetMultiSelect(multi)
	if multi {
		p.SetSelected(selected)
	} else if len(selected) == 1 {
		for i, it := range listItems {
			if it.ID == selected[0] {
				for j := 0; j < i; j++ {
					p.CursorDown()
				}
				break
			}
		}
	}
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	return &PickerModal{
		title:   title,
		scope:   core.ScopePicker,
		picker:  p,
		keys:    keys,
		styles:  st,
		onApply: onApply,
	}
}

func (s *PickerModal) Title() string { return s.title }
func (s *PickerModal) Scope() string { return s.scope }

// Selected returns the checked IDs of a multi-select picker.
func (s *PickerModal) Selected() []string { return s.picker.Selected() }

func (s *PickerModal) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if keyMsg.Type == tea.KeyRunes && (len(keyMsg.Runes) > 1 || keyMsg.Paste) {
		s.picker.TypeRunes(keyMsg.Runes)
		return s, nil, false
	}
	result := s.picker.HandleKey(s.pickerKey(keyMsg))
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSubmitted:
		return s, s.apply(result.SelectedIDs), true
	case core.PickerActionSelected:
		return s, s.apply([]string{result.Item.ID}), true
	default:
		return s, nil, false
	}
}

// pickerKey maps configured picker actions onto the keys core.Picker knows.
func (s *PickerModal) pickerKey(msg tea.KeyMsg) string {
	action, ok := s.keys.ActionFor(msg, s.scope)
	if !ok {
		return msg.String()
	}
	switch action {
	case core.ActionSelect:
		return "enter"
	case core.ActionClose:
		return "esc"
	case core.ActionToggleSelect:
		return "space"
	default:
		return msg.String()
	}
}

func (s *PickerModal) apply(ids []string) tea.Cmd {
	if s.onApply == nil {
		return nil
	}
	chosen := append([]string(nil), ids...)
	return func() tea.Msg { return s.onApply(chosen) }
}

func (s *PickerModal) View(width, height int) string {
	st := s.styles
	lines := []string{st.Header.Render(s.title)}
	filter := s.picker.Query()
	if filter == "" {
		filter = st.Muted.Render("(type to filter)")
	}
	lines = append(lines, "Filter: "+filter, "")

	items := s.picker.Items()
	visible := max(1, height-6)
	start := 0
	if cur := s.picker.Cursor(); cur >= visible {
		start = cur - visible + 1
	}
	if len(items) == 0 {
		lines = append(lines, st.Muted.Render("  No matches"))
	}
	for idx := start; idx < len(items) && idx < start+visible; idx++ {
		item := items[idx]
		prefix := "  "
		if idx == s.picker.Cursor() {
			prefix = "> "
		}
		label := item.Label
		if s.picker.MultiSelect() {
			box := "[ ] "
			if s.picker.IsSelected(item.ID) {
				box = "[x] "
			}
			label = box + label
		}
		if item.Meta != "" {
			label += st.Muted.Render(" - " + item.Meta)
		}
		if idx == s.picker.Cursor() {
			lines = append(lines, st.Focused.Render(prefix+label))
		} else {
			lines = append(lines, prefix+label)
		}
	}

	hint := "enter select  esc cancel"
	if s.picker.MultiSelect() {
		hint = "space toggle  enter apply  esc cancel"
	}
	lines = append(lines, "", st.Muted.Render(hint))
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
