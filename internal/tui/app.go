package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/orderform/core"
	"github.com/jask/orderform/internal/config"
	"github.com/jask/orderform/internal/orderform"
	"github.com/jask/orderform/screens"
)

// App is the Bubble Tea model of the order form. It renders the controller
// state and turns key presses into controller operations.
type App struct {
	ctrl    *orderform.Controller
	opts    config.OptionsConfig
	format  string
	keys    *core.KeyRegistry
	styles  core.Styles
	log     *zap.Logger
	screens core.ScreenStack

	state       orderform.State
	rows        []row
	focus       int
	input       textinput.Model
	dump        string
	dumpErr     error
	status      string
	statusErr   bool
	width       int
	height      int
	unsubscribe func()
}

// pickerAppliedMsg carries the choice made in an option picker back to the
// row that opened it.
type pickerAppliedMsg struct {
	rowID string
	ids   []string
}

func New(ctrl *orderform.Controller, cfg config.Config, keys *core.KeyRegistry, st core.Styles, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if keys == nil {
		keys = core.NewKeyRegistry(core.DefaultKeyBindings())
	}
	in := textinput.New()
	in.Prompt = ""
	in.Cursor.SetMode(cursor.CursorStatic)

	a := &App{
		ctrl:   ctrl,
		opts:   cfg.Options,
		format: cfg.Output.SnapshotFormat,
		keys:   keys,
		styles: st,
		log:    log.Named("tui"),
		input:  in,
		width:  80,
		height: 24,
	}
	a.state = ctrl.State()
	a.rows = buildRows(a.state, a.opts)
	a.renderDump()
	a.setFocus(0)
	a.unsubscribe = ctrl.Subscribe(a.onStateChange)
	return a
}

// Close detaches the app from the controller.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) onStateChange(prev, next orderform.State) {
	focusedID := a.focusedRow().id
	a.state = next
	a.rows = buildRows(next, a.opts)
	if next.Last != prev.Last {
		a.renderDump()
	}
	idx := a.focus
	for i, r := range a.rows {
		if r.id == focusedID {
			idx = i
			break
		}
	}
	a.setFocus(idx)
}

func (a *App) renderDump() {
	a.dump, a.dumpErr = "", nil
	if a.state.Last == nil {
		return
	}
	a.dump, a.dumpErr = a.state.Last.Render(a.format)
	if a.dumpErr != nil {
		a.log.Error("render snapshot", zap.String("format", a.format), zap.Error(a.dumpErr))
	}
}

func (a *App) focusedRow() row {
	if a.focus < 0 || a.focus >= len(a.rows) {
		return row{}
	}
	return a.rows[a.focus]
}

// setFocus clamps idx to the row list and binds the text input to the row.
func (a *App) setFocus(idx int) {
	if idx >= len(a.rows) {
		idx = len(a.rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	a.focus = idx
	r := a.focusedRow()
	if r.kind != rowText {
		a.input.Blur()
		return
	}
	if v := textValue(a.state, r); v != a.input.Value() {
		a.input.SetValue(v)
		a.input.CursorEnd()
	}
	a.input.Placeholder = r.placeholder
	a.input.Focus()
}

func (a *App) moveFocus(delta int) {
	n := len(a.rows)
	if n == 0 {
		return
	}
	a.setFocus((a.focus + delta + n) % n)
}

func (a *App) activeScope() string {
	if top := a.screens.Top(); top != nil {
		return top.Scope()
	}
	if a.focusedRow().kind == rowText {
		return core.ScopeFormText
	}
	return core.ScopeFormControl
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case core.StatusMsg:
		a.status, a.statusErr = m.Text, m.IsErr
		return a, nil
	case pickerAppliedMsg:
		return a, a.applyPicker(m)
	case tea.KeyMsg:
		if a.keys.IsAction(m, core.ActionQuit, a.activeScope()) {
			return a, tea.Quit
		}
		if top := a.screens.Top(); top != nil {
			next, cmd, done := top.Update(m)
			if done {
				a.screens.Pop()
			} else {
				a.screens.Replace(next)
			}
			return a, cmd
		}
		return a, a.handleFormKey(m)
	}
	if a.focusedRow().kind == rowText {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleFormKey(m tea.KeyMsg) tea.Cmd {
	r := a.focusedRow()
	if action, ok := a.keys.ActionFor(m, a.activeScope()); ok {
		switch action {
		case core.ActionNext, core.ActionAdvance:
			a.moveFocus(1)
			return nil
		case core.ActionPrev:
			a.moveFocus(-1)
			return nil
		case core.ActionActivate:
			return a.activate(r)
		case core.ActionToggle:
			return a.toggle(r, m)
		case core.ActionSubmit:
			return a.submit()
		case core.ActionAddFabric:
			return a.addFabric()
		case core.ActionRemoveFabric:
			if !r.inFabric() {
				return core.ErrorCmd(errors.New("focus a fabric to remove it"))
			}
			return a.removeFabric(r)
		}
	}
	if r.kind != rowText {
		return nil
	}
	if m.Type == tea.KeyRunes && !acceptsRunes(r.filter, m.Runes) {
		return nil
	}
	if m.Type == tea.KeySpace && r.filter != filterNone {
		return nil
	}
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	if a.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, a.commitText(r, a.input.Value()))
}

func (a *App) commitText(r row, text string) tea.Cmd {
	var err error
	if r.inFabric() {
		err = a.ctrl.UpdateFabricField(fabricIndex(a.state, r.fabricID), r.fabricField, orderform.Text(text))
	} else {
		err = a.ctrl.UpdateField(r.field, orderform.Text(text))
	}
	if err != nil {
		return core.ErrorCmd(err)
	}
	return nil
}

func (a *App) activate(r row) tea.Cmd {
	switch r.kind {
	case rowButton:
		switch r.button {
		case buttonAddFabric:
			return a.addFabric()
		case buttonRemoveFabric:
			return a.removeFabric(r)
		case buttonSubmit:
			return a.submit()
		}
	case rowSelect, rowMulti:
		a.openPicker(r)
	case rowRadio:
		return a.togglePresence()
	}
	return nil
}

func (a *App) toggle(r row, m tea.KeyMsg) tea.Cmd {
	if r.kind != rowRadio {
		if m.String() == "left" || m.String() == "right" {
			return nil
		}
		return a.activate(r)
	}
	switch m.String() {
	case "left":
		return a.setPresence(orderform.PresenceYes)
	case "right":
		return a.setPresence(orderform.PresenceNo)
	}
	return a.togglePresence()
}

func (a *App) togglePresence() tea.Cmd {
	if a.state.Form.ChinaFabricPresent == orderform.PresenceYes {
		return a.setPresence(orderform.PresenceNo)
	}
	return a.setPresence(orderform.PresenceYes)
}

func (a *App) setPresence(value string) tea.Cmd {
	if a.state.Form.ChinaFabricPresent == value {
		return nil
	}
	if err := a.ctrl.SetChinaFabricPresence(value); err != nil {
		return core.ErrorCmd(err)
	}
	return nil
}

func (a *App) openPicker(r row) {
	var selected []string
	multi := r.kind == rowMulti
	if multi {
		selected = setValue(a.state, r)
	} else if v := textValue(a.state, r); v != "" {
		selected = []string{v}
	}
	rowID := r.id
	modal := screens.NewPickerModal(r.label, r.options, multi, selected, a.keys, a.styles,
		func(ids []string) tea.Msg { return pickerAppliedMsg{rowID: rowID, ids: ids} })
	a.screens.Push(modal)
	a.log.Debug("picker opened", zap.String("row", rowID), zap.Bool("multi", multi))
}

func (a *App) applyPicker(m pickerAppliedMsg) tea.Cmd {
	var r row
	found := false
	for _, candidate := range a.rows {
		if candidate.id == m.rowID {
			r, found = candidate, true
			break
		}
	}
	if !found {
		return nil
	}

	var err error
	switch {
	case r.id == rowIDChinaFabrics:
		a.ctrl.SelectChinaFabrics(m.ids...)
	case r.kind == rowMulti:
		err = a.ctrl.UpdateFabricField(fabricIndex(a.state, r.fabricID), r.fabricField, orderform.Options(m.ids...))
	case len(m.ids) == 0:
		return nil
	case r.inFabric():
		err = a.ctrl.UpdateFabricField(fabricIndex(a.state, r.fabricID), r.fabricField, orderform.Text(m.ids[0]))
	default:
		err = a.ctrl.UpdateField(r.field, orderform.Text(m.ids[0]))
	}
	if err != nil {
		return core.ErrorCmd(err)
	}
	return nil
}

func (a *App) addFabric() tea.Cmd {
	a.ctrl.AddFabricEntry()
	n := len(a.state.Form.Fabrics)
	a.focusRow(fabricRowID(a.state.Form.Fabrics[n-1].ID, string(orderform.FabricName)))
	return core.StatusCmd(fmt.Sprintf("Added Fabric %d", n))
}

// removeFabric drops the fabric of r and moves focus to the fabric that took
// its place, or to the add button when it was the last one.
func (a *App) removeFabric(r row) tea.Cmd {
	idx := fabricIndex(a.state, r.fabricID)
	if idx < 0 {
		return nil
	}
	a.ctrl.RemoveFabricEntry(idx)
	if fabrics := a.state.Form.Fabrics; idx < len(fabrics) {
		a.focusRow(fabricRowID(fabrics[idx].ID, string(orderform.FabricName)))
	} else {
		a.focusRow(rowIDAddFabric)
	}
	return core.StatusCmd(fmt.Sprintf("Removed Fabric %d", idx+1))
}

func (a *App) focusRow(id string) {
	for i, r := range a.rows {
		if r.id == id {
			a.setFocus(i)
			return
		}
	}
}

func (a *App) submit() tea.Cmd {
	_, err := a.ctrl.Submit()
	var verrs orderform.ValidationErrors
	if errors.As(err, &verrs) {
		a.focusFirstError(verrs)
		return core.ErrorCmd(fmt.Errorf("fix %d %s before submitting", len(verrs), plural(len(verrs), "field", "fields")))
	}
	if err != nil {
		return core.ErrorCmd(err)
	}
	if a.dumpErr != nil {
		return core.ErrorCmd(a.dumpErr)
	}
	a.setFocus(0)
	return core.StatusCmd("Order submitted")
}

func (a *App) focusFirstError(verrs orderform.ValidationErrors) {
	var target string
	switch {
	case verrs.Has(orderform.KeyDate):
		target = string(orderform.FieldStartDate)
		if strings.TrimSpace(a.state.Form.StartDate) != "" {
			target = string(orderform.FieldEndDate)
		}
	case verrs.Has(orderform.KeyProductionPerDay):
		target = string(orderform.FieldProductionPerDay)
	case verrs.Has(orderform.KeyTotalOrderQuantity):
		target = string(orderform.FieldTotalOrderQuantity)
	default:
		return
	}
	a.focusRow(target)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
