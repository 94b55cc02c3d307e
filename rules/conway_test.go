package rules

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		neighbors int
		want      State
	}{
		{"alive underpopulated 0", Alive, 0, Dead},
		{"alive underpopulated 1", Alive, 1, Dead},
		{"alive survives 2", Alive, 2, Alive},
		{"alive survives 3", Alive, 3, Alive},
		{"alive overcrowded 4", Alive, 4, Dead},
		{"alive overcrowded 8", Alive, 8, Dead},
		{"dead stays dead 2", Dead, 2, Dead},
		{"dead born 3", Dead, 3, Alive},
		{"dead stays dead 4", Dead, 4, Dead},
		{"dead stays dead 0", Dead, 0, Dead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.state, tt.neighbors); got != tt.want {
				t.Fatalf("Next(%d, %d) = %d, want %d", tt.state, tt.neighbors, got, tt.want)
			}
		})
	}
}

func TestFromRune(t *testing.T) {
	if s, ok := FromRune('#'); !ok || s != Alive {
		t.Fatalf("'#' = (%d, %v), want (Alive, true)", s, ok)
	}
	if s, ok := FromRune('_'); !ok || s != Dead {
		t.Fatalf("'_' = (%d, %v), want (Dead, true)", s, ok)
	}
	for _, r := range []rune{'.', ' ', 'O', '1', '\t'} {
		if _, ok := FromRune(r); ok {
			t.Fatalf("%q should not be recognized", r)
		}
	}
	if Alive.Rune() != '#' || Dead.Rune() != '_' {
		t.Fatalf("Rune() does not invert FromRune")
	}
}
