package worldgen

import "testing"

func testMesh(t *testing.T, cfg MapConfig) *Mesh {
	t.Helper()
	rng := NewRNG(cfg.Seed)
	sample := GeneratePoints(cfg, rng)
	mesh, err := BuildMesh(sample.Points)
	if err != nil {
		t.Fatalf("BuildMesh failed: %v", err)
	}
	return mesh
}

func TestComputeTerrainNormalized(t *testing.T) {
	cfg := SmallMapConfig()
	mesh := testMesh(t, cfg)
	result := ComputeTerrain(cfg, mesh)

	min, max := result.Elevation[0], result.Elevation[0]
	for _, e := range result.Elevation {
		if e < min {
			min = e
		}
		if e > max {
			max = e
		}
	}
	if min != 0 {
		t.Errorf("min elevation = %v, want 0", min)
	}
	if max != 1 {
		t.Errorf("max elevation = %v, want 1", max)
	}
}

func TestComputeTerrainDeterministic(t *testing.T) {
	cfg := SmallMapConfig()
	mesh := testMesh(t, cfg)

	r1 := ComputeTerrain(cfg, mesh)
	r2 := ComputeTerrain(cfg, mesh)

	for i := range r1.Elevation {
		if r1.Elevation[i] != r2.Elevation[i] {
			t.Fatalf("elevation diverged at triangle %d: %v vs %v", i, r1.Elevation[i], r2.Elevation[i])
		}
	}
}

func TestMountainHeightRaisesMeanElevation(t *testing.T) {
	low := SmallMapConfig()
	low.MountainHeight = 0.1

	high := SmallMapConfig()
	high.MountainHeight = 1.0

	meshLow := testMesh(t, low)
	meshHigh := testMesh(t, high)

	rLow := ComputeTerrain(low, meshLow)
	rHigh := ComputeTerrain(high, meshHigh)

	meanLow := mean(rLow.Elevation)
	meanHigh := mean(rHigh.Elevation)

	if meanHigh <= meanLow {
		t.Errorf("expected higher MountainHeight to raise mean elevation: low=%v high=%v", meanLow, meanHigh)
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
