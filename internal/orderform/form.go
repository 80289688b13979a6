// Package orderform holds the production-order form state: the record being
// edited, its fabric line items, validation, and the last submitted snapshot.
//
// State values are immutable from the caller's point of view. Every update
// returns a new State; Controller owns the current one and notifies
// subscribers after each change.
package orderform

import (
	"strings"

	"github.com/google/uuid"
)

// Presence answers for FormData.ChinaFabricPresent.
const (
	PresenceYes = "Yes"
	PresenceNo  = "No"
)

// DefaultMajorFabric is the major fabric of a fresh form.
const DefaultMajorFabric = "None"

// Field names a top-level FormData field.
type Field string

const (
	FieldStartDate          Field = "startDate"
	FieldEndDate            Field = "endDate"
	FieldProductionPerDay   Field = "productionPerDay"
	FieldTotalOrderQuantity Field = "totalOrderQuantity"
	FieldMajorFabric        Field = "majorFabric"
	FieldChinaFabricPresent Field = "chinaFabricPresent"
)

// FabricField names a field of a FabricEntry.
type FabricField string

const (
	FabricName                FabricField = "fabricName"
	FabricPerPieceRequirement FabricField = "perPieceRequirement"
	FabricUnit                FabricField = "chooseUnit"
	FabricProcesses           FabricField = "processes"
	FabricColor               FabricField = "color"
	FabricQuantity            FabricField = "quantity"
	FabricStagesToSkip        FabricField = "stagesToSkip"
)

// IsSet reports whether the field holds a set of option values rather than text.
func (f FabricField) IsSet() bool {
	switch f {
	case FabricProcesses, FabricColor, FabricStagesToSkip:
		return true
	}
	return false
}

// FabricEntry is one fabric line item. Entries are addressed by position;
// ID only gives renderers a stable key and never leaves the process.
type FabricEntry struct {
	ID                  string   `json:"-" yaml:"-" toml:"-"`
	FabricName          string   `json:"fabricName" yaml:"fabricName" toml:"fabricName"`
	PerPieceRequirement string   `json:"perPieceRequirement" yaml:"perPieceRequirement" toml:"perPieceRequirement"`
	ChooseUnit          string   `json:"chooseUnit" yaml:"chooseUnit" toml:"chooseUnit"`
	Processes           []string `json:"processes" yaml:"processes" toml:"processes"`
	Color               []string `json:"color" yaml:"color" toml:"color"`
	Quantity            string   `json:"quantity" yaml:"quantity" toml:"quantity"`
	StagesToSkip        []string `json:"stagesToSkip" yaml:"stagesToSkip" toml:"stagesToSkip"`
}

// FormData is the complete order form record.
type FormData struct {
	StartDate          string        `json:"startDate" yaml:"startDate" toml:"startDate"`
	EndDate            string        `json:"endDate" yaml:"endDate" toml:"endDate"`
	ProductionPerDay   string        `json:"productionPerDay" yaml:"productionPerDay" toml:"productionPerDay"`
	TotalOrderQuantity string        `json:"totalOrderQuantity" yaml:"totalOrderQuantity" toml:"totalOrderQuantity"`
	Fabrics            []FabricEntry `json:"fabrics" yaml:"fabrics" toml:"fabrics"`
	MajorFabric        string        `json:"majorFabric" yaml:"majorFabric" toml:"majorFabric"`
	ChinaFabricPresent string        `json:"chinaFabricPresent" yaml:"chinaFabricPresent" toml:"chinaFabricPresent"`
}

// NewFormData returns the initial empty form.
func NewFormData() FormData {
	return FormData{
		Fabrics:            []FabricEntry{},
		MajorFabric:        DefaultMajorFabric,
		ChinaFabricPresent: PresenceNo,
	}
}

// NewFabricEntry returns an empty fabric line item with a fresh ID.
func NewFabricEntry() FabricEntry {
	return FabricEntry{
		ID:           uuid.NewString(),
		Processes:    []string{},
		Color:        []string{},
		StagesToSkip: []string{},
	}
}

// Clone returns a deep copy.
func (f FormData) Clone() FormData {
	out := f
	out.Fabrics = make([]FabricEntry, len(f.Fabrics))
	for i, e := range f.Fabrics {
		out.Fabrics[i] = e.Clone()
	}
	return out
}

// Clone returns a deep copy.
func (e FabricEntry) Clone() FabricEntry {
	out := e
	out.Processes = cloneStrings(e.Processes)
	out.Color = cloneStrings(e.Color)
	out.StagesToSkip = cloneStrings(e.StagesToSkip)
	return out
}

// Text returns the current value of a text field.
func (f FormData) Text(name Field) (string, bool) {
	switch name {
	case FieldStartDate:
		return f.StartDate, true
	case FieldEndDate:
		return f.EndDate, true
	case FieldProductionPerDay:
		return f.ProductionPerDay, true
	case FieldTotalOrderQuantity:
		return f.TotalOrderQuantity, true
	case FieldMajorFabric:
		return f.MajorFabric, true
	case FieldChinaFabricPresent:
		return f.ChinaFabricPresent, true
	}
	return "", false
}

// Text returns the current value of a text field of the entry.
func (e FabricEntry) Text(field FabricField) (string, bool) {
	switch field {
	case FabricName:
		return e.FabricName, true
	case FabricPerPieceRequirement:
		return e.PerPieceRequirement, true
	case FabricUnit:
		return e.ChooseUnit, true
	case FabricQuantity:
		return e.Quantity, true
	}
	return "", false
}

// Options returns the current selection of a set field of the entry.
func (e FabricEntry) Options(field FabricField) ([]string, bool) {
	switch field {
	case FabricProcesses:
		return cloneStrings(e.Processes), true
	case FabricColor:
		return cloneStrings(e.Color), true
	case FabricStagesToSkip:
		return cloneStrings(e.StagesToSkip), true
	}
	return nil, false
}

// Value is the payload of a field update: Text for typed and single-choice
// inputs, Options for multi-select inputs.
type Value struct {
	text    string
	options []string
	multi   bool
}

// Text wraps a single string value.
func Text(s string) Value { return Value{text: s} }

// Options wraps the selected values of a multi-select input.
func Options(values ...string) Value { return Value{options: values, multi: true} }

// IsOptions reports whether v carries a selection.
func (v Value) IsOptions() bool { return v.multi }

func (v Value) String() string {
	if v.multi {
		return "[" + strings.Join(v.options, ",") + "]"
	}
	return v.text
}

// normalizeOptions drops blanks and duplicates, keeping first-seen order.
func normalizeOptions(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}
