package building

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/golang/glog"

	"liftsim/lift"
	"liftsim/types"
)

var (
	// ErrNoLiftAvailable means no lift could be evaluated at all.
	// With at least one lift constructed it does not occur.
	ErrNoLiftAvailable = errors.New("no lift available")

	// ErrBadFloorRange means the bottom floor lies above the top floor.
	ErrBadFloorRange = errors.New("bottom floor above top floor")
)

// Building owns a fixed set of lifts and assigns each incoming
// passenger request to whichever lift is estimated to serve it
// soonest. The lift collection never changes after construction, so
// only each lift's interior state is synchronized.
type Building struct {
	bottomFloor int
	topFloor    int
	lifts       []*lift.Lift
}

// New builds the lift fleet and starts one control loop per lift. This
// is the only place loops are spawned; they run until the process
// exits.
func New(bottom, top, liftCount int, timing lift.Timing) (*Building, error) {
	if bottom > top {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBadFloorRange, bottom, top)
	}
	if liftCount < 1 {
		return nil, fmt.Errorf("need at least one lift, got %d", liftCount)
	}
	b := &Building{bottomFloor: bottom, topFloor: top}
	for i := 0; i < liftCount; i++ {
		l := lift.New(i, timing)
		b.lifts = append(b.lifts, l)
		go l.Run()
	}
	glog.Infof("building: floors [%d, %d], %d lifts", bottom, top, liftCount)
	return b, nil
}

// Respond assigns the passenger to the best-suited lift, enqueues them
// on it, and returns the lift's index.
func (b *Building) Respond(p types.Passenger) (int, error) {
	index, err := b.bestLift(p)
	if err != nil {
		return 0, fmt.Errorf("could not respond to passenger %v: %w", p, err)
	}
	b.lifts[index].AddPassenger(p)
	glog.V(1).Infof("building: passenger %v assigned to lift %d", p, index)
	return index, nil
}

// bestLift scans the fleet in a freshly shuffled order, so ties do not
// always fall to the lowest index, and keeps the lift with the
// smallest estimated distance.
func (b *Building) bestLift(p types.Passenger) (int, error) {
	if len(b.lifts) == 0 {
		return 0, ErrNoLiftAvailable
	}
	best := -1
	closest := 0
	for _, index := range rand.Perm(len(b.lifts)) {
		dist := b.lifts[index].DistanceFrom(p)
		if best == -1 || dist < closest {
			best = index
			closest = dist
		}
	}
	return best, nil
}

// Random submits a passenger travelling between two distinct random
// floors.
func (b *Building) Random() (int, error) {
	span := b.topFloor - b.bottomFloor
	if span < 2 {
		return 0, fmt.Errorf("floor range [%d, %d) too small for a random trip", b.bottomFloor, b.topFloor)
	}
	order := rand.Perm(span)
	from := b.bottomFloor + order[0]
	to := b.bottomFloor + order[1]
	return b.Respond(types.NewPassenger(from, to))
}

// RealisticRandom submits a trip between the ground floor and one
// random floor, in a random direction. Most real traffic starts or
// ends at the ground floor. The ground floor is absolute floor 0, not
// bottomFloor; in a building whose range starts above 0 these trips
// reach outside the configured range.
func (b *Building) RealisticRandom() (int, error) {
	span := b.topFloor - b.bottomFloor
	if span < 1 {
		return 0, fmt.Errorf("floor range [%d, %d) too small for a random trip", b.bottomFloor, b.topFloor)
	}
	from := 0
	to := b.bottomFloor + rand.Intn(span)
	if rand.Intn(2) == 0 {
		from, to = to, from
	}
	return b.Respond(types.NewPassenger(from, to))
}
