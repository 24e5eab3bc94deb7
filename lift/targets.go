package lift

import (
	"errors"
	"sort"

	"liftsim/types"
)

// ErrNoTargets is returned by the target queue when it is empty.
// Callers treat it as "go idle", not as a fault.
var ErrNoTargets = errors.New("no pending targets")

// targetQueue holds the floors a lift must stop at, strictly ascending
// and duplicate-free. It is not self-locking; the owning lift guards
// all access.
type targetQueue struct {
	floors []int
}

// insert adds floor in order. Inserting a floor already present is a
// no-op.
func (q *targetQueue) insert(floor int) {
	pos := sort.SearchInts(q.floors, floor)
	if pos < len(q.floors) && q.floors[pos] == floor {
		return
	}
	q.floors = append(q.floors, 0)
	copy(q.floors[pos+1:], q.floors[pos:])
	q.floors[pos] = floor
}

// remove deletes floor if present; absent floors are a no-op.
func (q *targetQueue) remove(floor int) {
	pos := sort.SearchInts(q.floors, floor)
	if pos < len(q.floors) && q.floors[pos] == floor {
		q.floors = append(q.floors[:pos], q.floors[pos+1:]...)
	}
}

func (q *targetQueue) contains(floor int) bool {
	pos := sort.SearchInts(q.floors, floor)
	return pos < len(q.floors) && q.floors[pos] == floor
}

func (q *targetQueue) empty() bool {
	return len(q.floors) == 0
}

func (q *targetQueue) first() int {
	return q.floors[0]
}

func (q *targetQueue) last() int {
	return q.floors[len(q.floors)-1]
}

func (q *targetQueue) snapshot() []int {
	out := make([]int, len(q.floors))
	copy(out, q.floors)
	return out
}

// next picks the floor to head for with a SCAN sweep: the lift keeps
// travelling in dir, serving every target that way, and reverses only
// at the boundary of its own target set. newDir is the direction the
// lift should adopt for subsequent calls; it flips when the current
// floor is the extreme target in the direction of travel, or when all
// targets lie behind the lift.
func (q *targetQueue) next(floor int, dir types.Direction) (target int, newDir types.Direction, err error) {
	if len(q.floors) == 0 {
		return 0, dir, ErrNoTargets
	}
	newDir = dir
	pos := sort.SearchInts(q.floors, floor)
	if pos < len(q.floors) && q.floors[pos] == floor {
		if dir == types.Down && pos == 0 {
			newDir = types.Up
		} else if dir == types.Up && pos == len(q.floors)-1 {
			newDir = types.Down
		}
		return floor, newDir, nil
	}
	switch {
	case pos == len(q.floors):
		newDir = types.Down
		target = q.floors[len(q.floors)-1]
	case pos == 0:
		newDir = types.Up
		target = q.floors[0]
	case dir == types.Up:
		target = q.floors[pos]
	default:
		target = q.floors[pos-1]
	}
	return target, newDir, nil
}
