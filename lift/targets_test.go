package lift

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"liftsim/types"
)

func queueOf(floors ...int) *targetQueue {
	q := &targetQueue{}
	for _, f := range floors {
		q.insert(f)
	}
	return q
}

func TestInsertIdempotent(t *testing.T) {
	q := queueOf(5, 2, 8)
	before := q.snapshot()

	q.insert(5)
	q.insert(2)

	if !reflect.DeepEqual(q.snapshot(), before) {
		t.Errorf("re-inserting present floors changed the queue: %v, was %v", q.snapshot(), before)
	}
}

func TestInsertRemoveKeepsAscending(t *testing.T) {
	q := &targetQueue{}
	ops := []struct {
		insert bool
		floor  int
	}{
		{true, 7}, {true, -3}, {true, 0}, {true, 7}, {false, 0},
		{true, 12}, {true, 3}, {false, 99}, {false, -3}, {true, 5},
	}

	for _, op := range ops {
		if op.insert {
			q.insert(op.floor)
		} else {
			q.remove(op.floor)
		}
		floors := q.snapshot()
		if !sort.IntsAreSorted(floors) {
			t.Fatalf("queue not sorted after op %+v: %v", op, floors)
		}
		for i := 1; i < len(floors); i++ {
			if floors[i] == floors[i-1] {
				t.Fatalf("duplicate floor after op %+v: %v", op, floors)
			}
		}
	}

	if want := []int{3, 5, 7, 12}; !reflect.DeepEqual(q.snapshot(), want) {
		t.Errorf("final queue = %v, want %v", q.snapshot(), want)
	}
}

func TestNextEmpty(t *testing.T) {
	q := &targetQueue{}
	for _, dir := range []types.Direction{types.Stopped, types.Up, types.Down} {
		if _, _, err := q.next(4, dir); !errors.Is(err, ErrNoTargets) {
			t.Errorf("next on empty queue (dir %v): err = %v, want ErrNoTargets", dir, err)
		}
	}
}

// A lift at a floor that is itself a target serves it first, then
// continues the sweep.
func TestNextScanServesCurrentFloor(t *testing.T) {
	q := queueOf(2, 5, 8)

	target, newDir, err := q.next(5, types.Up)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 5 || newDir != types.Up {
		t.Errorf("next(5, Up) = (%d, %v), want (5, up)", target, newDir)
	}

	q.remove(5)
	target, newDir, err = q.next(5, types.Up)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 8 || newDir != types.Up {
		t.Errorf("after serving 5, next(5, Up) = (%d, %v), want (8, up)", target, newDir)
	}
}

// Reversal triggers when the current floor is the last target in the
// direction of travel, at either end of the queue.
func TestNextReversesAtQueueEnds(t *testing.T) {
	q := queueOf(2, 5, 8)

	target, newDir, err := q.next(8, types.Up)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 8 || newDir != types.Down {
		t.Errorf("next(8, Up) = (%d, %v), want (8, down)", target, newDir)
	}

	target, newDir, err = q.next(2, types.Down)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 2 || newDir != types.Up {
		t.Errorf("next(2, Down) = (%d, %v), want (2, up)", target, newDir)
	}
}

// A lift moving up with every target below it reverses and heads for
// its highest remaining target, and vice versa.
func TestNextReversesWhenTargetsBehind(t *testing.T) {
	q := queueOf(1, 3)
	target, newDir, err := q.next(5, types.Up)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 3 || newDir != types.Down {
		t.Errorf("next(5, Up) over [1 3] = (%d, %v), want (3, down)", target, newDir)
	}

	q = queueOf(4, 7)
	target, newDir, err = q.next(0, types.Down)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 4 || newDir != types.Up {
		t.Errorf("next(0, Down) over [4 7] = (%d, %v), want (4, up)", target, newDir)
	}
}

// Between two targets the sweep continues in the current direction.
func TestNextContinuesSweep(t *testing.T) {
	q := queueOf(2, 8)

	target, _, err := q.next(5, types.Up)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 8 {
		t.Errorf("next(5, Up) over [2 8] = %d, want 8", target)
	}

	target, _, err = q.next(5, types.Down)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if target != 2 {
		t.Errorf("next(5, Down) over [2 8] = %d, want 2", target)
	}
}
