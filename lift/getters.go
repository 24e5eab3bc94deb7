package lift

import (
	"fmt"

	"liftsim/types"
)

func (l *Lift) ID() int {
	return l.id
}

func (l *Lift) Floor() int {
	l.floorMu.RLock()
	defer l.floorMu.RUnlock()
	return l.floor
}

func (l *Lift) Direction() types.Direction {
	l.dirMu.RLock()
	defer l.dirMu.RUnlock()
	return l.dir
}

func (l *Lift) DoorsOpen() bool {
	l.doorMu.RLock()
	defer l.doorMu.RUnlock()
	return l.doorsOpen
}

// Info reads floor, direction, and door state one field at a time. A
// concurrent mutation can tear the combination; callers only display
// it, nothing depends on the three being consistent.
func (l *Lift) Info() (floor int, dir types.Direction, doorsOpen bool) {
	return l.Floor(), l.Direction(), l.DoorsOpen()
}

// Passengers returns a copy of the passenger set.
func (l *Lift) Passengers() []types.Passenger {
	l.cargoMu.Lock()
	defer l.cargoMu.Unlock()
	out := make([]types.Passenger, len(l.passengers))
	copy(out, l.passengers)
	return out
}

// Targets returns a copy of the pending target floors, ascending.
func (l *Lift) Targets() []int {
	l.cargoMu.Lock()
	defer l.cargoMu.Unlock()
	return l.targets.snapshot()
}

// Label formats the lift for display: current floor and a direction
// arrow, replaced by ↔ while the doors are open.
func (l *Lift) Label() string {
	floor, dir, doorsOpen := l.Info()
	symbol := dir.Symbol()
	if doorsOpen {
		symbol = "↔"
	}
	return fmt.Sprintf("%d %s", floor, symbol)
}
