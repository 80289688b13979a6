package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/orderform/internal/config"
	"github.com/jask/orderform/internal/orderform"
)

func rowIDs(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

func TestBuildRowsFreshForm(t *testing.T) {
	rows := buildRows(orderform.NewState(), config.DefaultOptions())
	require.Equal(t, []string{
		"startDate", "endDate", "productionPerDay", "totalOrderQuantity",
		rowIDAddFabric, "majorFabric", "chinaFabricPresent", rowIDSubmit,
	}, rowIDs(rows))
}

func TestBuildRowsWithFabricsAndChina(t *testing.T) {
	st := orderform.NewState().WithFabricAdded().WithFabricAdded()
	st, err := st.WithChinaFabricPresence(orderform.PresenceYes)
	require.NoError(t, err)

	rows := buildRows(st, config.DefaultOptions())
	require.Len(t, rows, 4+2*8+5)

	second := st.Form.Fabrics[1].ID
	var labels []string
	for _, r := range rows {
		if r.fabricID == second {
			require.Equal(t, 2, r.fabricNo)
			labels = append(labels, r.label)
		}
	}
	require.Equal(t, []string{
		"Fabric Name", "Per Piece Requirement", "Choose Unit", "Processes",
		"Color", "Quantity", "Stages To Skip", "Remove Fabric 2",
	}, labels)
	require.Equal(t, rowIDChinaFabrics, rows[len(rows)-2].id)
	require.Equal(t, "Fabric 2", rows[len(rows)-2].options[1].Label)
}

func TestRowValues(t *testing.T) {
	st := orderform.NewState().WithFabricAdded()
	id := st.Form.Fabrics[0].ID
	st, err := st.WithFabricField(0, orderform.FabricColor, orderform.Options("Navy", "Red"))
	require.NoError(t, err)
	st, err = st.WithFabricField(0, orderform.FabricQuantity, orderform.Text("40"))
	require.NoError(t, err)

	require.Equal(t, "40", textValue(st, row{fabricID: id, fabricField: orderform.FabricQuantity}))
	require.Equal(t, []string{"Navy", "Red"}, setValue(st, row{fabricID: id, fabricField: orderform.FabricColor}))
	require.Equal(t, orderform.DefaultMajorFabric, textValue(st, row{field: orderform.FieldMajorFabric}))
	require.Empty(t, textValue(st, row{fabricID: "gone", fabricField: orderform.FabricQuantity}))
}

func TestAcceptsRunes(t *testing.T) {
	tests := []struct {
		filter inputFilter
		in     string
		want   bool
	}{
		{filterDate, "2024-01-01", true},
		{filterDate, "2024/01/01", false},
		{filterNumber, "12.50", true},
		{filterNumber, "-1", false},
		{filterNumber, "1e3", false},
		{filterNone, "Cotton twill", true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, acceptsRunes(tt.filter, []rune(tt.in)), "%d %q", tt.filter, tt.in)
	}
}
