package orderform

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrFieldKind     = errors.New("value kind does not match field")
	ErrInvalidChoice = errors.New("invalid choice")
)

// State is everything the form screen shows: the record being edited, the
// China fabric selection, the errors of the last submit attempt, and the last
// successful snapshot.
//
// The China fabric selection is kept beside Form, so snapshots never carry it.
// It is always empty while Form.ChinaFabricPresent is "No".
type State struct {
	Form         FormData
	ChinaFabrics []string
	Errors       ValidationErrors
	Last         *Snapshot

	rev uint64
}

// NewState returns the state of a freshly opened form.
func NewState() State {
	return State{
		Form:         NewFormData(),
		ChinaFabrics: []string{},
		Errors:       ValidationErrors{},
	}
}

// Revision increases by one with every update that changed the state.
func (s State) Revision() uint64 { return s.rev }

func (s State) clone() State {
	out := s
	out.Form = s.Form.Clone()
	out.ChinaFabrics = cloneStrings(s.ChinaFabrics)
	out.Errors = s.Errors.clone()
	out.rev = s.rev + 1
	return out
}

// WithField replaces one top-level field. Setting chinaFabricPresent goes
// through WithChinaFabricPresence.
func (s State) WithField(name Field, v Value) (State, error) {
	if name == FieldChinaFabricPresent {
		if v.IsOptions() {
			return s, fmt.Errorf("%s: %w", name, ErrFieldKind)
		}
		return s.WithChinaFabricPresence(v.text)
	}
	if _, ok := s.Form.Text(name); !ok {
		return s, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
	if v.IsOptions() {
		return s, fmt.Errorf("%s: %w", name, ErrFieldKind)
	}
	next := s.clone()
	switch name {
	case FieldStartDate:
		next.Form.StartDate = v.text
	case FieldEndDate:
		next.Form.EndDate = v.text
	case FieldProductionPerDay:
		next.Form.ProductionPerDay = v.text
	case FieldTotalOrderQuantity:
		next.Form.TotalOrderQuantity = v.text
	case FieldMajorFabric:
		next.Form.MajorFabric = v.text
	}
	return next, nil
}

// WithFabricAdded appends an empty fabric entry.
func (s State) WithFabricAdded() State {
	next := s.clone()
	next.Form.Fabrics = append(next.Form.Fabrics, NewFabricEntry())
	return next
}

// WithFabricRemoved drops the entry at index; later entries shift down.
// An out-of-range index returns s unchanged.
func (s State) WithFabricRemoved(index int) State {
	if index < 0 || index >= len(s.Form.Fabrics) {
		return s
	}
	next := s.clone()
	next.Form.Fabrics = append(next.Form.Fabrics[:index], next.Form.Fabrics[index+1:]...)
	return next
}

// WithFabricField replaces one field of the entry at index. An out-of-range
// index returns s unchanged.
func (s State) WithFabricField(index int, field FabricField, v Value) (State, error) {
	if _, ok := (FabricEntry{}).Text(field); !ok && !field.IsSet() {
		return s, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}
	if field.IsSet() != v.IsOptions() {
		return s, fmt.Errorf("%s: %w", field, ErrFieldKind)
	}
	if index < 0 || index >= len(s.Form.Fabrics) {
		return s, nil
	}
	next := s.clone()
	e := &next.Form.Fabrics[index]
	switch field {
	case FabricName:
		e.FabricName = v.text
	case FabricPerPieceRequirement:
		e.PerPieceRequirement = v.text
	case FabricUnit:
		e.ChooseUnit = v.text
	case FabricQuantity:
		e.Quantity = v.text
	case FabricProcesses:
		e.Processes = normalizeOptions(v.options)
	case FabricColor:
		e.Color = normalizeOptions(v.options)
	case FabricStagesToSkip:
		e.StagesToSkip = normalizeOptions(v.options)
	}
	return next, nil
}

// WithChinaFabricPresence sets the presence answer. Answering "No" clears the
// China fabric selection.
func (s State) WithChinaFabricPresence(value string) (State, error) {
	if value != PresenceYes && value != PresenceNo {
		return s, fmt.Errorf("china fabric presence %q: %w", value, ErrInvalidChoice)
	}
	next := s.clone()
	next.Form.ChinaFabricPresent = value
	if value == PresenceNo {
		next.ChinaFabrics = []string{}
	}
	return next, nil
}

// WithChinaFabrics replaces the China fabric selection. It is ignored while
// presence is "No".
func (s State) WithChinaFabrics(values []string) State {
	if s.Form.ChinaFabricPresent != PresenceYes {
		return s
	}
	next := s.clone()
	next.ChinaFabrics = normalizeOptions(values)
	return next
}

// Submit validates the form. On failure the errors are stored, the form is
// left as is, and the returned error is the ValidationErrors. On success the
// form is captured in Last and reset to its initial state.
func (s State) Submit() (State, error) {
	errs := Validate(s.Form)
	next := s.clone()
	next.Errors = errs
	if len(errs) > 0 {
		return next, errs
	}
	next.Last = newSnapshot(s.Form)
	next.Form = NewFormData()
	next.ChinaFabrics = []string{}
	return next, nil
}
