package worldgen

import "testing"

func waterRatio(t *testing.T, data *MapData) float64 {
	t.Helper()
	waterBiomes := map[Biome]bool{
		ShallowWater: true, ShallowOcean: true, Ocean: true, DeepOcean: true,
	}
	water := 0
	total := data.Width * data.Height
	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			if waterBiomes[data.Biomes[y][x]] {
				water++
			}
		}
	}
	return float64(water) / float64(total)
}

func TestGenerateAlphaSeedWaterRatio(t *testing.T) {
	cfg := SmallMapConfig()
	cfg.Seed = "alpha"
	cfg.Width = 64
	cfg.Height = 48
	cfg.SeaLevel = 0.4

	data, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	ratio := waterRatio(t, data)
	if ratio < 0.1 || ratio > 0.9 {
		t.Errorf("water ratio = %v, want in [0.1, 0.9]", ratio)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := SmallMapConfig()
	cfg.Seed = "alpha"

	a, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if a.Elevation[y][x] != b.Elevation[y][x] {
				t.Fatalf("elevation diverged at (%d,%d): %v vs %v", x, y, a.Elevation[y][x], b.Elevation[y][x])
			}
			if a.Biomes[y][x] != b.Biomes[y][x] {
				t.Fatalf("biome diverged at (%d,%d): %v vs %v", x, y, a.Biomes[y][x], b.Biomes[y][x])
			}
			if a.Rivers[y][x] != b.Rivers[y][x] {
				t.Fatalf("river intensity diverged at (%d,%d): %v vs %v", x, y, a.Rivers[y][x], b.Rivers[y][x])
			}
		}
	}
}

func TestGenerateHigherSeaLevelMoreWater(t *testing.T) {
	low := SmallMapConfig()
	low.Seed = "alpha"
	low.SeaLevel = 0.4

	high := SmallMapConfig()
	high.Seed = "alpha"
	high.SeaLevel = 0.7

	dataLow, err := Generate(low)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	dataHigh, err := Generate(high)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	ratioLow := waterRatio(t, dataLow)
	ratioHigh := waterRatio(t, dataHigh)

	if ratioHigh <= ratioLow {
		t.Errorf("expected higher SeaLevel to produce strictly more water: low=%v high=%v", ratioLow, ratioHigh)
	}
}

func TestGenerateNoRiversGivesZeroGrid(t *testing.T) {
	cfg := SmallMapConfig()
	cfg.Rivers = 0

	data, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if data.Rivers[y][x] != 0 {
				t.Fatalf("pixel (%d,%d) has nonzero river intensity with Rivers=0", x, y)
			}
		}
	}
}

func TestGenerateMountainHeightRaisesMeanElevation(t *testing.T) {
	low := SmallMapConfig()
	low.MountainHeight = 0.1

	high := SmallMapConfig()
	high.MountainHeight = 1.0

	dataLow, err := Generate(low)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	dataHigh, err := Generate(high)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	sLow := Summarize(dataLow)
	sHigh := Summarize(dataHigh)

	if sHigh.MeanElevation <= sLow.MeanElevation {
		t.Errorf("expected higher MountainHeight to raise mean elevation: low=%v high=%v", sLow.MeanElevation, sHigh.MeanElevation)
	}
}

func TestGenerateWindAngleShiftsMoistureAsymmetrically(t *testing.T) {
	a := SmallMapConfig()
	a.WindAngleDeg = 0

	b := SmallMapConfig()
	b.WindAngleDeg = 180

	dataA, err := Generate(a)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	dataB, err := Generate(b)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	waterBiomes := map[Biome]bool{
		ShallowWater: true, ShallowOcean: true, Ocean: true, DeepOcean: true,
	}

	land, differing := 0, 0
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if waterBiomes[dataA.Biomes[y][x]] {
				continue
			}
			land++
			if dataA.Moisture[y][x] != dataB.Moisture[y][x] {
				differing++
			}
		}
	}

	if land == 0 {
		t.Skip("no land pixels generated for this config")
	}
	if float64(differing)/float64(land) < 0.5 {
		t.Errorf("expected opposite wind angles to shift moisture on a majority of land pixels, got %d/%d", differing, land)
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := SmallMapConfig()
	cfg.SeaLevel = 5.0

	_, err := Generate(cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T", err)
	}
}

func TestSummarizeBiomeCountsSumToTotal(t *testing.T) {
	cfg := SmallMapConfig()
	data, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	s := Summarize(data)
	total := 0
	for _, c := range s.BiomeCounts {
		total += c
	}
	if total != cfg.Width*cfg.Height {
		t.Errorf("biome counts sum to %d, want %d", total, cfg.Width*cfg.Height)
	}
}
