package window

import "testing"

func TestOptionsSize(t *testing.T) {
	tests := []struct {
		name       string
		opts       Options
		rows, cols int
		w, h       int
	}{
		{"default cell size", Options{CellSize: 10}, 3, 5, 50, 30},
		{"single pixel cells", Options{CellSize: 1}, 7, 2, 2, 7},
		{"zero cell size clamps to one", Options{}, 4, 4, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.opts.Size(tt.rows, tt.cols)
			if w != tt.w || h != tt.h {
				t.Fatalf("Size(%d, %d) = %dx%d, want %dx%d", tt.rows, tt.cols, w, h, tt.w, tt.h)
			}
		})
	}
}
