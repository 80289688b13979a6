package orderform

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Keys of ValidationErrors.
const (
	KeyDate               = "date"
	KeyProductionPerDay   = "productionPerDay"
	KeyTotalOrderQuantity = "totalOrderQuantity"
)

const (
	msgDate               = "Both start and end dates are required."
	msgProductionPerDay   = "Production per day must be a positive number."
	msgTotalOrderQuantity = "Total order quantity must be a positive number."
)

// ValidationErrors maps a field group key to its message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "invalid order form: " + strings.Join(parts, "; ")
}

// Has reports whether key carries an error.
func (v ValidationErrors) Has(key string) bool {
	_, ok := v[key]
	return ok
}

func (v ValidationErrors) clone() ValidationErrors {
	if v == nil {
		return nil
	}
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	return out
}

// Validate checks the date range and the two quantities. Major fabric and
// fabric line items are not validated. The result is empty when f is valid.
func Validate(f FormData) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(f.StartDate) == "" || strings.TrimSpace(f.EndDate) == "" {
		errs[KeyDate] = msgDate
	}
	if !positive(f.ProductionPerDay) {
		errs[KeyProductionPerDay] = msgProductionPerDay
	}
	if !positive(f.TotalOrderQuantity) {
		errs[KeyTotalOrderQuantity] = msgTotalOrderQuantity
	}
	return errs
}

// positive treats empty and unparsable input as not positive.
func positive(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	n, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return n.IsPositive()
}
