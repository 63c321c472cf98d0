package array2d

import "testing"

func TestIndexing(t *testing.T) {
	a := New[int](4, 3)

	if a.Width() != 4 || a.Height() != 3 || a.Size() != 12 {
		t.Fatalf("dimensions = %dx%d size %d, want 4x3 size 12", a.Width(), a.Height(), a.Size())
	}

	a.Set(2, 1, 42)
	if got := *a.Get(2, 1); got != 42 {
		t.Errorf("Get(2,1) = %d, want 42", got)
	}

	// Row-major layout: (2,1) is flat index 2 + 1*4.
	if got := a.Data()[6]; got != 42 {
		t.Errorf("Data()[6] = %d, want 42", got)
	}
}

func TestTryGetBounds(t *testing.T) {
	a := New[string](3, 2)
	a.Set(0, 1, "hit")

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"in bounds", 0, 1, true},
		{"corner", 2, 1, true},
		{"x too large", 3, 0, false},
		{"y too large", 0, 2, false},
		{"x valid y invalid", 1, 5, false},
		{"x invalid y valid", 5, 1, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := a.TryGet(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("TryGet(%d,%d) ok = %v, want %v", tc.x, tc.y, ok, tc.ok)
			}
			if ok && v == nil {
				t.Fatal("TryGet returned ok with nil pointer")
			}
		})
	}
}

func TestGetPointerMutation(t *testing.T) {
	a := New[[]int](2, 2)

	cell := a.Get(1, 1)
	*cell = append(*cell, 7)

	if got := *a.Get(1, 1); len(got) != 1 || got[0] != 7 {
		t.Errorf("mutation through Get pointer not visible, got %v", got)
	}
}

func TestFlatClear(t *testing.T) {
	a := New[[]int](3, 3)
	for i := range a.Data() {
		a.Data()[i] = append(a.Data()[i], i)
	}

	// In-place truncation through the flat view keeps capacity.
	data := a.Data()
	for i := range data {
		data[i] = data[i][:0]
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if len(*a.Get(x, y)) != 0 {
				t.Fatalf("cell (%d,%d) not cleared", x, y)
			}
		}
	}
}
