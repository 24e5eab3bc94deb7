package building

import (
	"reflect"
	"testing"

	"liftsim/types"
)

func TestData(t *testing.T) {
	b := parked(-2, 10, 0, -5, 3)

	want := []LiftStatus{
		{RelativeFloor: 2, Label: "0  "},
		{RelativeFloor: 0, Label: "-5  "}, // below the bottom floor clamps to zero
		{RelativeFloor: 5, Label: "3  "},
	}
	if got := b.Data(); !reflect.DeepEqual(got, want) {
		t.Errorf("Data() = %v, want %v", got, want)
	}
}

func TestMaxValue(t *testing.T) {
	b := parked(-2, 10)
	if b.MaxValue() != 12 {
		t.Errorf("MaxValue() = %d, want 12", b.MaxValue())
	}
}

func TestString(t *testing.T) {
	b := parked(0, 10, 4, 1)
	b.lifts[1].AddPassenger(types.NewPassenger(2, 6))

	want := "lift 0: floor 4, stopped, doors open=false, targets=[], 0 passengers\n" +
		"lift 1: floor 1, stopped, doors open=false, targets=[2], 1 passengers"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLiftCount(t *testing.T) {
	b := parked(0, 10, 0, 0, 0)
	if b.LiftCount() != 3 {
		t.Errorf("LiftCount() = %d, want 3", b.LiftCount())
	}
	if b.BottomFloor() != 0 || b.TopFloor() != 10 {
		t.Errorf("floor range = [%d, %d], want [0, 10]", b.BottomFloor(), b.TopFloor())
	}
}
