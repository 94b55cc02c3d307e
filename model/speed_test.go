package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseSpeedDivisors(t *testing.T) {
	want := map[string]uint64{"1": 7, "2": 5, "3": 3, "4": 2, "5": 1}
	for literal, divisor := range want {
		s, err := ParseSpeed(literal)
		if err != nil {
			t.Fatalf("ParseSpeed(%q): %v", literal, err)
		}
		if !s.Valid() {
			t.Fatalf("speed %d reported invalid", s)
		}
		if got := s.Divisor(); got != divisor {
			t.Fatalf("speed %s divisor = %d, want %d", literal, got, divisor)
		}
	}
}

func TestParseSpeedRejects(t *testing.T) {
	for _, literal := range []string{"", "0", "6", "-1", " 3", "3 ", "03", "3.0", "three", "10"} {
		if _, err := ParseSpeed(literal); !errors.Is(err, ErrInvalidSpeed) {
			t.Fatalf("ParseSpeed(%q) err = %v, want ErrInvalidSpeed", literal, err)
		}
	}
}

func TestDivisorPanicsOnInvalidSpeed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Speed(6).Divisor()
}
