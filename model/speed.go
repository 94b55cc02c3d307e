package model

import (
	"github.com/pkg/errors"
)

// Speed is the user facing speed level, 1 (slowest) to 5 (fastest)
type Speed int

const (
	MinSpeed Speed = 1
	MaxSpeed Speed = 5
)

// divisors maps each speed level to the number of frames per generation
var divisors = [...]uint64{
	1: 7,
	2: 5,
	3: 3,
	4: 2,
	5: 1,
}

// ParseSpeed accepts exactly the literals "1" through "5"
func ParseSpeed(s string) (Speed, error) {
	switch s {
	case "1", "2", "3", "4", "5":
		return Speed(s[0] - '0'), nil
	}
	return 0, errors.Wrapf(ErrInvalidSpeed, "[ParseSpeed] %q is not one of 1, 2, 3, 4, 5", s)
}

// Valid reports whether s is in the accepted range
func (s Speed) Valid() bool {
	return s >= MinSpeed && s <= MaxSpeed
}

// Divisor returns how many frames elapse per generation. It panics for an
// invalid speed; use ParseSpeed to build one.
func (s Speed) Divisor() uint64 {
	if !s.Valid() {
		panic(errors.Wrapf(ErrInvalidSpeed, "[Divisor] speed %d", int(s)))
	}
	return divisors[s]
}
