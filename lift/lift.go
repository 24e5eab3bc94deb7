package lift

import (
	"sync"
	"time"

	"github.com/golang/glog"

	"liftsim/types"
)

// Default pacing, used for any Timing field left at zero.
const (
	DefaultFloorTravel  = 500 * time.Millisecond
	DefaultDoorHold     = 750 * time.Millisecond
	DefaultPollInterval = 100 * time.Millisecond
)

// Timing controls the pacing of a lift's control loop.
type Timing struct {
	FloorTravel  time.Duration // time to move one floor
	DoorHold     time.Duration // one door dwell phase; every stop has two
	PollInterval time.Duration // delay between control cycles
}

func (t Timing) withDefaults() Timing {
	if t.FloorTravel <= 0 {
		t.FloorTravel = DefaultFloorTravel
	}
	if t.DoorHold <= 0 {
		t.DoorHold = DefaultDoorHold
	}
	if t.PollInterval <= 0 {
		t.PollInterval = DefaultPollInterval
	}
	return t
}

// Lift is one independently operating car. Each field group has its
// own lock so readers can observe state while the control loop mutates
// it; passengers and targets share a single lock so that boarding a
// passenger and enqueueing their destination happen atomically.
//
// Lock order: cargoMu may be held while taking a field lock, never the
// reverse.
type Lift struct {
	id     int
	timing Timing

	floorMu sync.RWMutex
	floor   int

	dirMu sync.RWMutex
	dir   types.Direction

	doorMu    sync.RWMutex
	doorsOpen bool

	cargoMu    sync.Mutex
	passengers []types.Passenger
	targets    targetQueue
}

// New creates an idle lift at floor 0 with doors closed. The control
// loop is not started here; the owning building spawns Run exactly
// once per lift.
func New(id int, timing Timing) *Lift {
	return NewAt(id, 0, timing)
}

// NewAt creates an idle lift parked at the given floor.
func NewAt(id, floor int, timing Timing) *Lift {
	return &Lift{id: id, floor: floor, timing: timing.withDefaults(), dir: types.Stopped}
}

// Run drives the lift forever: pick the next target, move one floor at
// a time toward it, service each floor on arrival, and idle when no
// targets remain. There is no way to stop a running lift; it lives as
// long as the process.
func (l *Lift) Run() {
	for {
		if target, err := l.nextTarget(); err != nil {
			l.setDirection(types.Stopped)
		} else {
			l.moveTowards(target)
		}
		time.Sleep(l.timing.PollInterval)
	}
}

// AddPassenger registers a waiting passenger and queues their pickup
// floor. The passenger set stays ordered and duplicate-free.
func (l *Lift) AddPassenger(p types.Passenger) {
	l.cargoMu.Lock()
	defer l.cargoMu.Unlock()

	pos := len(l.passengers)
	for i, q := range l.passengers {
		if q == p {
			pos = -1
			break
		}
		if p.Less(q) && pos == len(l.passengers) {
			pos = i
		}
	}
	if pos >= 0 {
		l.passengers = append(l.passengers, types.Passenger{})
		copy(l.passengers[pos+1:], l.passengers[pos:])
		l.passengers[pos] = p
	}
	l.targets.insert(p.FromFloor)
	glog.V(1).Infof("lift %d: accepted passenger %v", l.id, p)
}

// DistanceFrom estimates how many floors this lift must travel before
// it can pick the passenger up. A lift already sweeping the
// passenger's way is charged the direct distance; one sweeping away is
// charged its remaining sweep plus the way back.
func (l *Lift) DistanceFrom(p types.Passenger) int {
	pFloor := p.FromFloor
	pDir := p.Direction()
	floor := l.Floor()
	dir := l.Direction()

	l.cargoMu.Lock()
	defer l.cargoMu.Unlock()

	if dir == types.Stopped || l.targets.empty() {
		return types.Difference(floor, pFloor)
	}
	if (dir == types.Down && pDir == types.Down && floor > pFloor) ||
		(dir == types.Up && pDir == types.Up && floor < pFloor) {
		// The lift will pass the pickup floor before reversing.
		return types.Difference(floor, pFloor)
	}
	sweepEnd := l.targets.first()
	if dir == types.Up {
		sweepEnd = l.targets.last()
	}
	return types.Difference(floor, sweepEnd) + types.Difference(sweepEnd, pFloor)
}

// nextTarget consults the queue under the current floor and direction
// and applies whatever direction reversal the sweep decided on.
func (l *Lift) nextTarget() (int, error) {
	floor := l.Floor()
	dir := l.Direction()

	l.cargoMu.Lock()
	target, newDir, err := l.targets.next(floor, dir)
	l.cargoMu.Unlock()
	if err != nil {
		return 0, err
	}
	if newDir != dir {
		l.setDirection(newDir)
	}
	return target, nil
}

// moveTowards advances the lift one floor toward target, paced by the
// per-floor travel duration. The floor actually reached follows the
// direction the lift had when the move began; a lift that was stopped
// re-arrives at its own floor and starts moving on the next cycle.
func (l *Lift) moveTowards(target int) {
	floor := l.Floor()
	dir := l.Direction()

	if target > floor {
		l.setDirection(types.Up)
	} else if target < floor {
		l.setDirection(types.Down)
	}
	time.Sleep(l.timing.FloorTravel)

	switch dir {
	case types.Up:
		l.reachFloor(floor + 1)
	case types.Down:
		l.reachFloor(floor - 1)
	default:
		l.reachFloor(floor)
	}
}

// reachFloor records arrival, clears the floor from the target queue,
// boards and drops off passengers, and runs the door cycle if the
// floor was a pending stop. Boarding and the destination enqueue hold
// cargoMu together, so a rider is never visible without their
// destination queued.
func (l *Lift) reachFloor(floor int) {
	l.setFloor(floor)

	l.cargoMu.Lock()
	openDoors := l.targets.contains(floor)
	if openDoors {
		l.targets.remove(floor)
	}
	kept := l.passengers[:0]
	for _, p := range l.passengers {
		if p.FromFloor == floor && !p.Riding() {
			p = p.Board()
			l.targets.insert(p.ToFloor)
			glog.V(1).Infof("lift %d: boarded %v at floor %d", l.id, p, floor)
		}
		if p.Riding() && p.ToFloor == floor {
			glog.V(1).Infof("lift %d: dropped off %v at floor %d", l.id, p, floor)
			continue
		}
		kept = append(kept, p)
	}
	l.passengers = kept
	l.cargoMu.Unlock()

	if openDoors {
		glog.V(2).Infof("lift %d: stopping at floor %d", l.id, floor)
		l.openDoors()
	}
}

// openDoors runs the two dwell phases of a stop: opening plus boarding
// time, then closing time.
func (l *Lift) openDoors() {
	l.setDoorsOpen(true)
	time.Sleep(l.timing.DoorHold)
	time.Sleep(l.timing.DoorHold)
	l.setDoorsOpen(false)
}

func (l *Lift) setFloor(floor int) {
	l.floorMu.Lock()
	l.floor = floor
	l.floorMu.Unlock()
}

func (l *Lift) setDirection(dir types.Direction) {
	l.dirMu.Lock()
	l.dir = dir
	l.dirMu.Unlock()
}

func (l *Lift) setDoorsOpen(open bool) {
	l.doorMu.Lock()
	l.doorsOpen = open
	l.doorMu.Unlock()
}
