package worldgen

import "testing"

func TestRasterizeGridBounds(t *testing.T) {
	cfg := SmallMapConfig()
	mesh := testMesh(t, cfg)
	terrain := ComputeTerrain(cfg, mesh)
	climate := ComputeClimate(cfg, mesh, terrain.Elevation)
	hydro := ComputeHydrology(cfg, mesh, terrain.Elevation, climate.Rainfall)
	biomes := ClassifyBiomes(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature)

	data := Rasterize(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature, biomes, hydro.Rivers)

	if data.Width != cfg.Width || data.Height != cfg.Height {
		t.Fatalf("grid dims = %dx%d, want %dx%d", data.Width, data.Height, cfg.Width, cfg.Height)
	}
	if len(data.Elevation) != cfg.Height || len(data.Biomes) != cfg.Height || len(data.Rivers) != cfg.Height {
		t.Fatalf("grid row count mismatch with Height=%d", cfg.Height)
	}
	for y := 0; y < cfg.Height; y++ {
		if len(data.Elevation[y]) != cfg.Width || len(data.Biomes[y]) != cfg.Width {
			t.Fatalf("row %d column count mismatch with Width=%d", y, cfg.Width)
		}
	}
}

func TestRasterizeValuesInRange(t *testing.T) {
	cfg := SmallMapConfig()
	mesh := testMesh(t, cfg)
	terrain := ComputeTerrain(cfg, mesh)
	climate := ComputeClimate(cfg, mesh, terrain.Elevation)
	hydro := ComputeHydrology(cfg, mesh, terrain.Elevation, climate.Rainfall)
	biomes := ClassifyBiomes(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature)

	data := Rasterize(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature, biomes, hydro.Rivers)

	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			e := data.Elevation[y][x]
			if e < 0 || e > 1 {
				t.Fatalf("pixel (%d,%d) elevation %v out of [0,1]", x, y, e)
			}
			if data.Rivers[y][x] < 0 {
				t.Fatalf("pixel (%d,%d) negative river intensity %v", x, y, data.Rivers[y][x])
			}
		}
	}
}

func TestRasterizeNoRiversMeansZeroGrid(t *testing.T) {
	cfg := SmallMapConfig()
	mesh := testMesh(t, cfg)
	terrain := ComputeTerrain(cfg, mesh)
	climate := ComputeClimate(cfg, mesh, terrain.Elevation)
	biomes := ClassifyBiomes(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature)

	data := Rasterize(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature, biomes, nil)

	for y := 0; y < data.Height; y++ {
		for x := 0; x < data.Width; x++ {
			if data.Rivers[y][x] != 0 {
				t.Fatalf("pixel (%d,%d) has nonzero river intensity with no rivers given", x, y)
			}
		}
	}
}
