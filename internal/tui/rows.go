package tui

import (
	"fmt"

	"github.com/jask/orderform/internal/config"
	"github.com/jask/orderform/internal/orderform"
	"github.com/jask/orderform/screens"
)

type rowKind int

const (
	rowText rowKind = iota
	rowSelect
	rowMulti
	rowRadio
	rowButton
)

// inputFilter limits the runes a text row accepts.
type inputFilter int

const (
	filterNone inputFilter = iota
	filterDate
	filterNumber
)

type buttonAction int

const (
	buttonNone buttonAction = iota
	buttonAddFabric
	buttonRemoveFabric
	buttonSubmit
)

const (
	rowIDAddFabric    = "add-fabric"
	rowIDChinaFabrics = "china-fabrics"
	rowIDSubmit       = "submit"
)

// row is one focusable control. Fabric rows carry the entry id so they
// survive index shifts.
type row struct {
	id          string
	kind        rowKind
	label       string
	placeholder string
	filter      inputFilter
	field       orderform.Field
	fabricID    string
	fabricNo    int
	fabricField orderform.FabricField
	options     []screens.PickerItem
	button      buttonAction
}

func (r row) inFabric() bool { return r.fabricID != "" }

func plainItems(values []string) []screens.PickerItem {
	out := make([]screens.PickerItem, 0, len(values))
	for _, v := range values {
		out = append(out, screens.PickerItem{ID: v, Label: v})
	}
	return out
}

func chinaItems(opts []config.Option) []screens.PickerItem {
	out := make([]screens.PickerItem, 0, len(opts))
	for _, o := range opts {
		out = append(out, screens.PickerItem{ID: o.Value, Label: o.Label})
	}
	return out
}

func fabricRowID(fabricID string, suffix string) string {
	return "fabric/" + fabricID + "/" + suffix
}

// buildRows lays out the controls for st in display order.
func buildRows(st orderform.State, opts config.OptionsConfig) []row {
	rows := []row{
		{id: string(orderform.FieldStartDate), kind: rowText, label: "Start Date", placeholder: "YYYY-MM-DD", filter: filterDate, field: orderform.FieldStartDate},
		{id: string(orderform.FieldEndDate), kind: rowText, label: "End Date", placeholder: "YYYY-MM-DD", filter: filterDate, field: orderform.FieldEndDate},
		{id: string(orderform.FieldProductionPerDay), kind: rowText, label: "Production Per Day Per Machine", placeholder: "0", filter: filterNumber, field: orderform.FieldProductionPerDay},
		{id: string(orderform.FieldTotalOrderQuantity), kind: rowText, label: "Total Order Quantity", placeholder: "0", filter: filterNumber, field: orderform.FieldTotalOrderQuantity},
	}

	for i, e := range st.Form.Fabrics {
		no := i + 1
		fab := func(kind rowKind, label string, field orderform.FabricField) row {
			return row{
				id:          fabricRowID(e.ID, string(field)),
				kind:        kind,
				label:       label,
				fabricID:    e.ID,
				fabricNo:    no,
				fabricField: field,
			}
		}
		name := fab(rowText, "Fabric Name", orderform.FabricName)
		perPiece := fab(rowText, "Per Piece Requirement", orderform.FabricPerPieceRequirement)
		perPiece.filter, perPiece.placeholder = filterNumber, "0.00"
		unit := fab(rowSelect, "Choose Unit", orderform.FabricUnit)
		unit.options = plainItems(opts.Units)
		processes := fab(rowMulti, "Processes", orderform.FabricProcesses)
		processes.options = plainItems(opts.Processes)
		color := fab(rowMulti, "Color", orderform.FabricColor)
		color.options = plainItems(opts.Colors)
		qty := fab(rowText, "Quantity", orderform.FabricQuantity)
		qty.filter, qty.placeholder = filterNumber, "0"
		stages := fab(rowMulti, "Stages To Skip", orderform.FabricStagesToSkip)
		stages.options = plainItems(opts.Stages)
		remove := row{
			id:       fabricRowID(e.ID, "remove"),
			kind:     rowButton,
			label:    fmt.Sprintf("Remove Fabric %d", no),
			fabricID: e.ID,
			fabricNo: no,
			button:   buttonRemoveFabric,
		}
		rows = append(rows, name, perPiece, unit, processes, color, qty, stages, remove)
	}

	rows = append(rows,
		row{id: rowIDAddFabric, kind: rowButton, label: "Add Another Fabric", button: buttonAddFabric},
		row{id: string(orderform.FieldMajorFabric), kind: rowSelect, label: "Major Fabric", field: orderform.FieldMajorFabric, options: plainItems(opts.MajorFabrics)},
		row{id: string(orderform.FieldChinaFabricPresent), kind: rowRadio, label: "Is China Fabric Present?", field: orderform.FieldChinaFabricPresent},
	)
	if st.Form.ChinaFabricPresent == orderform.PresenceYes {
		rows = append(rows, row{id: rowIDChinaFabrics, kind: rowMulti, label: "Select China Fabrics", options: chinaItems(opts.ChinaFabrics)})
	}
	rows = append(rows, row{id: rowIDSubmit, kind: rowButton, label: "Submit", button: buttonSubmit})
	return rows
}

func fabricIndex(st orderform.State, fabricID string) int {
	for i, e := range st.Form.Fabrics {
		if e.ID == fabricID {
			return i
		}
	}
	return -1
}

// textValue returns the current text of a text or select row.
func textValue(st orderform.State, r row) string {
	if !r.inFabric() {
		v, _ := st.Form.Text(r.field)
		return v
	}
	idx := fabricIndex(st, r.fabricID)
	if idx < 0 {
		return ""
	}
	v, _ := st.Form.Fabrics[idx].Text(r.fabricField)
	return v
}

// setValue returns the current values of a multi-select row.
func setValue(st orderform.State, r row) []string {
	if r.id == rowIDChinaFabrics {
		return st.ChinaFabrics
	}
	idx := fabricIndex(st, r.fabricID)
	if idx < 0 {
		return nil
	}
	v, _ := st.Form.Fabrics[idx].Options(r.fabricField)
	return v
}

func acceptsRunes(f inputFilter, runes []rune) bool {
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
		case f == filterDate && r == '-':
		case f == filterNumber && r == '.':
		case f == filterNone:
		default:
			return false
		}
	}
	return true
}
