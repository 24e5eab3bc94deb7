package types

import "fmt"

// Direction doubles as a lift's motion state and a passenger's travel
// direction.
type Direction int

const (
	Stopped Direction = 0
	Up      Direction = 1
	Down    Direction = 2
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "stopped"
	}
}

// Symbol is the single-character display form of the direction.
func (d Direction) Symbol() string {
	switch d {
	case Up:
		return "↑"
	case Down:
		return "↓"
	default:
		return " "
	}
}

// Passenger is one pickup/drop-off request. It carries no identity
// beyond its field values: two passengers with the same floors and
// riding status compare equal.
type Passenger struct {
	FromFloor int
	ToFloor   int
	riding    bool
}

func NewPassenger(from, to int) Passenger {
	return Passenger{FromFloor: from, ToFloor: to}
}

// Riding reports whether the passenger has boarded a lift.
func (p Passenger) Riding() bool {
	return p.riding
}

// Board returns the passenger marked as on board.
func (p Passenger) Board() Passenger {
	p.riding = true
	return p
}

// Direction is the passenger's direction of travel.
func (p Passenger) Direction() Direction {
	if p.ToFloor > p.FromFloor {
		return Up
	}
	return Down
}

// Less orders passengers by (FromFloor, ToFloor, riding).
func (p Passenger) Less(q Passenger) bool {
	if p.FromFloor != q.FromFloor {
		return p.FromFloor < q.FromFloor
	}
	if p.ToFloor != q.ToFloor {
		return p.ToFloor < q.ToFloor
	}
	return !p.riding && q.riding
}

func (p Passenger) String() string {
	return fmt.Sprintf("%d→%d (riding=%t)", p.FromFloor, p.ToFloor, p.riding)
}

// Difference is the non-negative distance between two floors.
func Difference(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}
