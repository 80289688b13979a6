package core

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionToggled
	PickerActionSelected
	PickerActionSubmitted
	PickerActionCancelled
)

type PickerResult struct {
	Action      PickerAction
	Item        PickerItem
	SelectedIDs []string
}

type Picker struct {
	title       string
	items       []PickerItem
	filtered    []PickerItem
	query       string
	cursor      int
	multiSelect bool
	selected    map[string]bool
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title), selected: make(map[string]bool)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string {
	if p == nil {
		return ""
	}
	return p.title
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) MultiSelect() bool {
	return p != nil && p.multiSelect
}

func (p *Picker) SetMultiSelect(on bool) {
	if p == nil {
		return
	}
	p.multiSelect = on
}

// SetSelected replaces the checked items. Unknown IDs are dropped.
func (p *Picker) SetSelected(ids []string) {
	if p == nil {
		return
	}
	known := make(map[string]bool, len(p.items))
	for _, it := range p.items {
		known[it.ID] = true
	}
	p.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		if known[id] {
			p.selected[id] = true
		}
	}
}

func (p *Picker) IsSelected(id string) bool {
	return p != nil && p.selected[id]
}

// Selected returns the checked IDs in item order.
func (p *Picker) Selected() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.selected))
	for _, it := range p.items {
		if p.selected[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if p == nil {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

// TypeRunes appends pasted or typed-ahead text to the query. Spaces are
// kept as text and never toggle.
func (p *Picker) TypeRunes(rs []rune) {
	if p == nil {
		return
	}
	var b strings.Builder
	for _, r := range rs {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return
	}
	p.SetQuery(p.query + b.String())
}

func (p *Picker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p == nil {
		return
	}
	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
		return
	}
	if p.cursor < maxIdx {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx], true
}

func (p *Picker) Toggle() {
	if p == nil || !p.multiSelect {
		return
	}
	item, ok := p.CurrentItem()
	if !ok {
		return
	}
	if p.selected[item.ID] {
		delete(p.selected, item.ID)
	} else {
		p.selected[item.ID] = true
	}
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch keyName {
	case "up", "ctrl+p":
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "down", "ctrl+n":
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
		return PickerResult{Action: PickerActionNone}
	case "space", " ":
		if !p.multiSelect {
			p.SetQuery(p.query + " ")
			return PickerResult{Action: PickerActionNone}
		}
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		p.Toggle()
		return PickerResult{Action: PickerActionToggled, Item: item, SelectedIDs: p.Selected()}
	case "enter":
		if p.multiSelect {
			return PickerResult{Action: PickerActionSubmitted, SelectedIDs: p.Selected()}
		}
		item, ok := p.CurrentItem()
		if !ok {
			return PickerResult{Action: PickerActionNone}
		}
		return PickerResult{Action: PickerActionSelected, Item: item}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if len(p.query) > 0 {
			p.SetQuery(p.query[:len(p.query)-1])
		}
		return PickerResult{Action: PickerActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			p.SetQuery(p.query + keyName)
		}
		return PickerResult{Action: PickerActionNone}
	}
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	if p == nil {
		return
	}
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	out := make([]PickerItem, 0, len(scored))
	for _, row := range scored {
		out = append(out, row.item)
	}
	p.filtered = out

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// typoScore ranks typo matches below every subsequence match.
const typoScore = -1

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			if typoMatch(labelLower, queryLower) {
				return true, typoScore
			}
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

// typoMatch compares the query against the same-length prefix of the label
// and of each of its words. Short queries never match this way.
func typoMatch(label, query string) bool {
	q := []rune(query)
	if len(q) < 3 {
		return false
	}
	allowed := 1
	if len(q) >= 6 {
		allowed = 2
	}
	candidates := append([]string{label}, strings.Fields(label)...)
	for _, c := range candidates {
		r := []rune(c)
		if len(r) > len(q) {
			r = r[:len(q)]
		}
		if levenshtein.ComputeDistance(string(r), query) <= allowed {
			return true
		}
	}
	return false
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
