package building

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"liftsim/types"
)

// LiftStatus is one lift's row in a status report.
type LiftStatus struct {
	RelativeFloor int
	Label         string
}

// Data reports each lift's floor relative to the bottom of the
// building, clamped at zero, together with its display label.
// Read-only; lift state is not touched beyond field reads.
func (b *Building) Data() []LiftStatus {
	out := make([]LiftStatus, 0, len(b.lifts))
	for _, l := range b.lifts {
		out = append(out, LiftStatus{
			RelativeFloor: b.relativeFloor(l.Floor()),
			Label:         l.Label(),
		})
	}
	return out
}

func (b *Building) relativeFloor(floor int) int {
	value := floor - b.bottomFloor
	if value < 0 {
		return 0
	}
	return value
}

// MaxValue is the building's full floor span, for scaling a display.
func (b *Building) MaxValue() int {
	return types.Difference(b.bottomFloor, b.topFloor)
}

func (b *Building) LiftCount() int {
	return len(b.lifts)
}

func (b *Building) BottomFloor() int {
	return b.bottomFloor
}

func (b *Building) TopFloor() int {
	return b.topFloor
}

// String formats a one-line-per-lift snapshot of the fleet.
func (b *Building) String() string {
	var sb strings.Builder
	for i, l := range b.lifts {
		if i > 0 {
			sb.WriteString("\n")
		}
		floor, dir, doorsOpen := l.Info()
		fmt.Fprintf(&sb, "lift %d: floor %d, %s, doors open=%t, targets=%v, %d passengers",
			l.ID(), floor, dir, doorsOpen, l.Targets(), len(l.Passengers()))
	}
	return sb.String()
}

// LogState writes the fleet snapshot through glog.
func (b *Building) LogState() {
	glog.Info(b.String())
}
