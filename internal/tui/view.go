package tui

import (
	"fmt"
	"strings"

	"github.com/jask/orderform/core"
	"github.com/jask/orderform/internal/orderform"
	"github.com/jask/orderform/widgets"
)

// wideLayout is the terminal width from which the submitted data panel sits
// beside the form instead of below it.
const wideLayout = 100

func (a *App) View() string {
	w, h := max(20, a.width), max(8, a.height)
	bodyH := max(1, h-3)

	n := len(a.state.Form.Fabrics)
	header := a.styles.Header.Render("Production Order") +
		a.styles.Muted.Render(fmt.Sprintf("  %d %s", n, plural(n, "fabric", "fabrics")))

	lines, focusLine := a.formLines()
	var body string
	if a.state.Last != nil && w >= wideLayout {
		form := widgets.Static(strings.Join(window(lines, focusLine, bodyH), "\n"))
		body = widgets.HStack{
			Widgets: []widgets.Widget{form, a.submittedPanel()},
			Ratios:  []float64{3, 2},
			Gap:     1,
		}.Render(w, bodyH)
	} else {
		if a.state.Last != nil {
			panel := a.submittedPanel()
			lines = append(lines, "")
			lines = append(lines, strings.Split(panel.Render(w, len(strings.Split(panel.Content, "\n"))+3), "\n")...)
		}
		body = strings.Join(window(lines, focusLine, bodyH), "\n")
	}
	body = strings.Join(fill(strings.Split(body, "\n"), bodyH), "\n")

	view := strings.Join([]string{
		header,
		body,
		core.RenderStatusBar(a.status, a.statusErr, w, a.styles),
		core.RenderFooter(a.keys, a.activeScope(), w, a.styles),
	}, "\n")

	if top := a.screens.Top(); top != nil {
		popup := top.View(min(56, w-6), min(18, h-4))
		view = widgets.RenderPopup(view, popup, a.styles.Popup, w, h)
	}
	return view
}

func (a *App) submittedPanel() widgets.Panel {
	content := a.dump
	if a.dumpErr != nil {
		content = a.styles.Error.Render(a.dumpErr.Error())
	}
	return widgets.Panel{
		Title:      "Submitted Data",
		Content:    content,
		Style:      a.styles.Panel,
		TitleStyle: a.styles.Section,
	}
}

// formLines renders every row and returns the line index of the focused row.
func (a *App) formLines() ([]string, int) {
	lines := make([]string, 0, len(a.rows)*2)
	focusLine := 0
	for i, r := range a.rows {
		if r.inFabric() && (i == 0 || a.rows[i-1].fabricID != r.fabricID) {
			lines = append(lines, "", "  "+a.styles.Section.Render(fmt.Sprintf("Fabric %d", r.fabricNo)))
		}
		if r.id == rowIDAddFabric {
			lines = append(lines, "")
		}
		if i == a.focus {
			focusLine = len(lines)
		}
		lines = append(lines, a.renderRow(r, i == a.focus))
		if msg := a.rowError(r); msg != "" {
			lines = append(lines, "    "+a.styles.Error.Render(msg))
		}
	}
	return lines, focusLine
}

func (a *App) rowError(r row) string {
	if r.inFabric() {
		return ""
	}
	switch r.field {
	case orderform.FieldStartDate, orderform.FieldEndDate:
		return a.state.Errors[orderform.KeyDate]
	case orderform.FieldProductionPerDay:
		return a.state.Errors[orderform.KeyProductionPerDay]
	case orderform.FieldTotalOrderQuantity:
		return a.state.Errors[orderform.KeyTotalOrderQuantity]
	}
	return ""
}

func (a *App) renderRow(r row, focused bool) string {
	st := a.styles
	marker := "  "
	labelStyle := st.Label
	if focused {
		marker = st.Focused.Render("> ")
		labelStyle = st.Focused
	}
	if r.inFabric() {
		marker = "  " + marker
	}

	switch r.kind {
	case rowText:
		val := textValue(a.state, r)
		switch {
		case focused:
			val = a.input.View()
		case val == "":
			val = st.Muted.Render(r.placeholder)
		default:
			val = st.Value.Render(val)
		}
		return marker + labelStyle.Render(r.label+":") + " " + val
	case rowSelect:
		val := textValue(a.state, r)
		if val == "" {
			val = st.Muted.Render("choose...")
		} else {
			val = st.Value.Render(optionLabel(r, val))
		}
		return marker + labelStyle.Render(r.label+":") + " " + val + st.Muted.Render(" ▾")
	case rowMulti:
		vals := setValue(a.state, r)
		text := st.Muted.Render("none selected")
		if len(vals) > 0 {
			labels := make([]string, 0, len(vals))
			for _, v := range vals {
				labels = append(labels, optionLabel(r, v))
			}
			text = st.Value.Render(strings.Join(labels, ", "))
		}
		return marker + labelStyle.Render(r.label+":") + " " + text + st.Muted.Render(" ▾")
	case rowRadio:
		present := a.state.Form.ChinaFabricPresent
		return marker + labelStyle.Render(r.label) + " " +
			radio(st, orderform.PresenceYes, present) + "  " + radio(st, orderform.PresenceNo, present)
	case rowButton:
		style := st.Button
		switch {
		case focused:
			style = st.ButtonOn
		case r.button == buttonRemoveFabric:
			style = st.Danger
		}
		return marker + style.Render(r.label)
	}
	return marker + r.label
}

func radio(st core.Styles, value, current string) string {
	if value == current {
		return st.Value.Render("(•) " + value)
	}
	return st.Muted.Render("( ) " + value)
}

func optionLabel(r row, value string) string {
	for _, o := range r.options {
		if o.ID == value {
			return o.Label
		}
	}
	return value
}

// window returns at most height lines of lines, keeping focus visible with
// one line of context below it.
func window(lines []string, focus, height int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if focus+2 > height {
		start = focus + 2 - height
	}
	if start > len(lines)-height {
		start = len(lines) - height
	}
	return lines[start : start+height]
}

func fill(lines []string, height int) []string {
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
