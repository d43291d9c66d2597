package signature

import (
	"errors"
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Signature
		want float64
	}{
		{"identical", Signature{0.1, -0.2, 0.3}, Signature{0.1, -0.2, 0.3}, 0},
		{"pythagorean", Signature{0, 0}, Signature{3, 4}, 5},
		{"single entry", Signature{1.5}, Signature{-0.5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Distance(tt.b)
			if err != nil {
				t.Fatalf("Distance failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Signature{0.3, -0.1, 0.05, 0}
	b := Signature{-0.2, 0.4, 0, 0.1}

	ab, err := a.Distance(b)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	ba, err := b.Distance(a)
	if err != nil {
		t.Fatalf("Distance failed: %v", err)
	}
	if ab != ba {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistance_DimensionMismatch(t *testing.T) {
	a := Signature{1, 2, 3}
	b := Signature{1, 2}

	_, err := a.Distance(b)
	var mismatch *DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %v, want *DimensionMismatchError", err)
	}
	if mismatch.Len != 3 || mismatch.OtherLen != 2 {
		t.Errorf("mismatch lengths: got %d/%d, want 3/2", mismatch.Len, mismatch.OtherLen)
	}
}

func TestClone_Independent(t *testing.T) {
	a := Signature{0.1, 0.2}
	b := a.Clone()
	b[0] = 9

	if a[0] != 0.1 {
		t.Error("Clone shares backing storage with the original")
	}
}
