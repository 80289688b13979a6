package orderform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.UpdateField(FieldStartDate, Text("2024-01-01")))
	require.NoError(t, c.UpdateField(FieldEndDate, Text("2024-01-10")))
	require.NoError(t, c.UpdateField(FieldProductionPerDay, Text("10")))
	require.NoError(t, c.UpdateField(FieldTotalOrderQuantity, Text("100")))
}

func TestSubmitValidCapturesSnapshotAndResets(t *testing.T) {
	c := New(nil)
	fillValid(t, c)
	c.AddFabricEntry()
	require.NoError(t, c.UpdateFabricField(0, FabricName, Text("Cotton twill")))
	require.NoError(t, c.UpdateFabricField(0, FabricColor, Options("Navy", "Black")))
	before := c.State().Form

	snap, err := c.Submit()
	require.NoError(t, err)
	require.NotNil(t, snap)
	if diff := cmp.Diff(before, snap.Data()); diff != "" {
		t.Fatalf("snapshot differs from submitted form (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewFormData(), c.State().Form); diff != "" {
		t.Fatalf("form not reset (-want +got):\n%s", diff)
	}
	require.Empty(t, c.State().Errors)
	require.Same(t, snap, c.State().Last)
}

func TestSubmitZeroProductionKeepsForm(t *testing.T) {
	c := New(nil)
	fillValid(t, c)
	require.NoError(t, c.UpdateField(FieldProductionPerDay, Text("0")))
	before := c.State().Form

	snap, err := c.Submit()
	require.Nil(t, snap)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, ValidationErrors{KeyProductionPerDay: msgProductionPerDay}, c.State().Errors)
	require.Len(t, verrs, 1)
	if diff := cmp.Diff(before, c.State().Form); diff != "" {
		t.Fatalf("form changed on rejected submit (-want +got):\n%s", diff)
	}
	require.Nil(t, c.State().Last)
}

func TestSubmitSuccessClearsStaleErrors(t *testing.T) {
	c := New(nil)
	_, err := c.Submit()
	require.Error(t, err)
	require.Len(t, c.State().Errors, 3)

	fillValid(t, c)
	_, err = c.Submit()
	require.NoError(t, err)
	require.Empty(t, c.State().Errors)
}

func TestSecondSubmitReplacesSnapshot(t *testing.T) {
	c := New(nil)
	fillValid(t, c)
	first, err := c.Submit()
	require.NoError(t, err)

	fillValid(t, c)
	require.NoError(t, c.UpdateField(FieldTotalOrderQuantity, Text("250")))
	second, err := c.Submit()
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.Equal(t, "100", first.Data().TotalOrderQuantity)
	require.Equal(t, "250", c.State().Last.Data().TotalOrderQuantity)
}

func TestAddThenRemoveRestoresLength(t *testing.T) {
	c := New(nil)
	c.AddFabricEntry()
	c.AddFabricEntry()
	prior := len(c.State().Form.Fabrics)

	c.AddFabricEntry()
	c.RemoveFabricEntry(0)
	require.Len(t, c.State().Form.Fabrics, prior)
}

func TestRemoveFabricCompactsAndShifts(t *testing.T) {
	c := New(nil)
	for _, name := range []string{"a", "b", "c"} {
		c.AddFabricEntry()
		require.NoError(t, c.UpdateFabricField(len(c.State().Form.Fabrics)-1, FabricName, Text(name)))
	}
	c.RemoveFabricEntry(1)

	got := c.State().Form.Fabrics
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].FabricName)
	require.Equal(t, "c", got[1].FabricName)
}

func TestRemoveFabricOutOfRangeIsNoop(t *testing.T) {
	c := New(nil)
	c.AddFabricEntry()
	calls := 0
	c.Subscribe(func(prev, next State) { calls++ })
	rev := c.State().Revision()

	for _, idx := range []int{-1, 1, 42} {
		c.RemoveFabricEntry(idx)
	}
	require.Len(t, c.State().Form.Fabrics, 1)
	require.Equal(t, rev, c.State().Revision())
	require.Zero(t, calls)
}

func TestChinaFabricPresenceNoClearsSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
	}{
		{name: "empty selection"},
		{name: "one fabric", selected: []string{"Fabric1"}},
		{name: "all fabrics", selected: []string{"Fabric1", "Fabric2", "Fabric3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			require.NoError(t, c.SetChinaFabricPresence(PresenceYes))
			c.SelectChinaFabrics(tt.selected...)
			require.Len(t, c.State().ChinaFabrics, len(tt.selected))

			require.NoError(t, c.SetChinaFabricPresence(PresenceNo))
			require.Empty(t, c.State().ChinaFabrics)
			require.Equal(t, PresenceNo, c.State().Form.ChinaFabricPresent)
		})
	}
}

func TestChinaFabricPresenceThroughUpdateField(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.UpdateField(FieldChinaFabricPresent, Text(PresenceYes)))
	c.SelectChinaFabrics("Fabric2")
	require.NoError(t, c.UpdateField(FieldChinaFabricPresent, Text(PresenceNo)))
	require.Empty(t, c.State().ChinaFabrics)
}

func TestSelectChinaFabricsIgnoredWhileAbsent(t *testing.T) {
	c := New(nil)
	c.SelectChinaFabrics("Fabric1")
	require.Empty(t, c.State().ChinaFabrics)
}

func TestSubmitClearsChinaSelection(t *testing.T) {
	c := New(nil)
	fillValid(t, c)
	require.NoError(t, c.SetChinaFabricPresence(PresenceYes))
	c.SelectChinaFabrics("Fabric3")

	_, err := c.Submit()
	require.NoError(t, err)
	require.Equal(t, PresenceNo, c.State().Form.ChinaFabricPresent)
	require.Empty(t, c.State().ChinaFabrics)
}

func TestInvalidPresenceRejected(t *testing.T) {
	c := New(nil)
	err := c.SetChinaFabricPresence("maybe")
	require.ErrorIs(t, err, ErrInvalidChoice)
	require.Equal(t, PresenceNo, c.State().Form.ChinaFabricPresent)
}

func TestUpdateFieldErrors(t *testing.T) {
	c := New(nil)
	require.ErrorIs(t, c.UpdateField(Field("colour"), Text("x")), ErrUnknownField)
	require.ErrorIs(t, c.UpdateField(FieldStartDate, Options("x")), ErrFieldKind)
	require.ErrorIs(t, c.UpdateFabricField(0, FabricField("weight"), Text("1")), ErrUnknownField)
	require.ErrorIs(t, c.UpdateFabricField(0, FabricProcesses, Text("Dyeing")), ErrFieldKind)
	require.ErrorIs(t, c.UpdateFabricField(0, FabricName, Options("a")), ErrFieldKind)
}

func TestUpdateFabricFieldOutOfRangeIsNoop(t *testing.T) {
	c := New(nil)
	require.NoError(t, c.UpdateFabricField(3, FabricName, Text("x")))
	require.Empty(t, c.State().Form.Fabrics)
}

func TestFabricSelectionNormalized(t *testing.T) {
	c := New(nil)
	c.AddFabricEntry()
	require.NoError(t, c.UpdateFabricField(0, FabricStagesToSkip, Options("Packing", " ", "Cutting", "Packing")))
	require.Equal(t, []string{"Packing", "Cutting"}, c.State().Form.Fabrics[0].StagesToSkip)
}

func TestFabricEntriesGetDistinctIDs(t *testing.T) {
	c := New(nil)
	c.AddFabricEntry()
	c.AddFabricEntry()
	fabrics := c.State().Form.Fabrics
	require.NotEmpty(t, fabrics[0].ID)
	require.NotEqual(t, fabrics[0].ID, fabrics[1].ID)
}

func TestStateIsCopyOnWrite(t *testing.T) {
	c := New(nil)
	c.AddFabricEntry()
	require.NoError(t, c.UpdateFabricField(0, FabricProcesses, Options("Dyeing")))
	old := c.State()

	require.NoError(t, c.UpdateFabricField(0, FabricProcesses, Options("Printing")))
	c.AddFabricEntry()
	require.Equal(t, []string{"Dyeing"}, old.Form.Fabrics[0].Processes)
	require.Len(t, old.Form.Fabrics, 1)
}

func TestSubscribeNotifiesAndUnsubscribes(t *testing.T) {
	c := New(nil)
	var seen []uint64
	stop := c.Subscribe(func(prev, next State) {
		require.Equal(t, prev.Revision()+1, next.Revision())
		seen = append(seen, next.Revision())
	})
	require.NoError(t, c.UpdateField(FieldStartDate, Text("2024-01-01")))
	c.AddFabricEntry()
	stop()
	c.AddFabricEntry()
	require.Equal(t, []uint64{1, 2}, seen)
}

func TestSnapshotDataIsImmutable(t *testing.T) {
	c := New(nil)
	fillValid(t, c)
	c.AddFabricEntry()
	snap, err := c.Submit()
	require.NoError(t, err)

	data := snap.Data()
	data.StartDate = "1999-01-01"
	data.Fabrics[0].FabricName = "changed"
	require.Equal(t, "2024-01-01", snap.Data().StartDate)
	require.Empty(t, snap.Data().Fabrics[0].FabricName)
}
