package worldgen

import "testing"

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise("alpha-terrain")
	b := NewNoise("alpha-terrain")

	for i := 0; i < 50; i++ {
		x, y := float64(i)*1.3, float64(i)*0.7
		va, vb := a.Eval2(x, y), b.Eval2(x, y)
		if va != vb {
			t.Fatalf("Eval2(%v,%v) diverged: %v vs %v", x, y, va, vb)
		}
	}
}

func TestNoiseDifferentLabelsDiffer(t *testing.T) {
	a := NewNoise("alpha-terrain")
	b := NewNoise("alpha-water")

	same := true
	for i := 0; i < 20; i++ {
		x, y := float64(i), float64(i)*2
		if a.Eval2(x, y) != b.Eval2(x, y) {
			same = false
			break
		}
	}
	if same {
		t.Errorf("Noise from different labels produced identical output")
	}
}

func TestEval2InRange(t *testing.T) {
	n := NewNoise("range-check")
	for i := 0; i < 500; i++ {
		v := n.Eval2(float64(i)*0.37, float64(i)*0.11)
		if v < -1 || v > 1 {
			t.Fatalf("Eval2 out of [-1,1]: %v", v)
		}
	}
}

func TestEval201InRange(t *testing.T) {
	n := NewNoise("range-check-01")
	for i := 0; i < 500; i++ {
		v := n.Eval201(float64(i)*0.37, float64(i)*0.11)
		if v < 0 || v > 1 {
			t.Fatalf("Eval201 out of [0,1]: %v", v)
		}
	}
}

func TestRemap01Bounds(t *testing.T) {
	if Remap01(-1) != 0 {
		t.Errorf("Remap01(-1) = %v, want 0", Remap01(-1))
	}
	if Remap01(1) != 1 {
		t.Errorf("Remap01(1) = %v, want 1", Remap01(1))
	}
	if Remap01(0) != 0.5 {
		t.Errorf("Remap01(0) = %v, want 0.5", Remap01(0))
	}
}

func TestFBMDeterministicAndBounded(t *testing.T) {
	n := NewNoise("fbm-check")
	for i := 0; i < 200; i++ {
		x, y := float64(i)*0.05, float64(i)*0.03
		v1 := n.FBM(x, y, 4, 1.0, 0.5)
		v2 := n.FBM(x, y, 4, 1.0, 0.5)
		if v1 != v2 {
			t.Fatalf("FBM not deterministic at (%v,%v): %v vs %v", x, y, v1, v2)
		}
		if v1 < -1.01 || v1 > 1.01 {
			t.Fatalf("FBM out of expected range: %v", v1)
		}
	}
}
