package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}

	if New(-1).Len() != 0 {
		t.Fatal("negative length should yield an empty buffer")
	}
}

func TestFromSliceSharesMemory(t *testing.T) {
	s := []float64{1, 2, 3}
	b := FromSlice(s)
	b.Samples()[0] = 99
	if s[0] != 99 {
		t.Fatal("FromSlice should share underlying memory")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := []float64{1, 2, 3}
	b := Clone(s)
	b.Zero()
	if s[0] != 1 || s[1] != 2 || s[2] != 3 {
		t.Fatalf("Clone shared memory with source: %v", s)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
}

func TestZeroRange(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3, 4, 5})
	b.ZeroRange(1, 3)
	want := []float64{1, 0, 0, 4, 5}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("Samples()[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestZeroRangeClamps(t *testing.T) {
	b := FromSlice([]float64{1, 2, 3})
	b.ZeroRange(-5, 100)
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}

	b = FromSlice([]float64{1, 2, 3})
	b.ZeroRange(2, 1)
	if b.Samples()[1] != 2 || b.Samples()[2] != 3 {
		t.Fatalf("inverted range should be a no-op: %v", b.Samples())
	}
}

func TestZeroPrefix(t *testing.T) {
	cases := []struct {
		n    int
		want []float64
	}{
		{0, []float64{-1.5, 2, 3.5, 4}},
		{1, []float64{0, 2, 3.5, 4}},
		{3, []float64{0, 0, 0, 4}},
		{4, []float64{0, 0, 0, 0}},
		{9, []float64{0, 0, 0, 0}},
	}

	for _, tc := range cases {
		b := Clone([]float64{-1.5, 2, 3.5, 4})
		b.ZeroPrefix(tc.n)
		for i, v := range b.Samples() {
			if v != tc.want[i] {
				t.Fatalf("n=%d: Samples()[%d] = %v, want %v", tc.n, i, v, tc.want[i])
			}
		}
	}
}

func TestTruncateTowardZero(t *testing.T) {
	b := FromSlice([]float64{-3.5, -0.5, 0.5, 2.99, 7})
	b.TruncateTowardZero()
	want := []float64{-3, 0, 0, 2, 7}
	for i, v := range b.Samples() {
		if v != want[i] {
			t.Fatalf("Samples()[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := FromSlice([]float64{1, 2})
	c := b.Copy()
	c.Samples()[0] = 42
	if b.Samples()[0] != 1 {
		t.Fatal("Copy should not share memory")
	}
}
