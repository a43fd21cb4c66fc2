package worldgen

// MapData is produced by a single call to Generate. The contract is a
// pure function: the same MapConfig always produces a bit-identical
// MapData, and Generate never touches disk, the network, or a clock.
//
// Generate runs the pipeline end to end: point sampling, Delaunay
// meshing, terrain, climate, hydrology, biome classification, and
// rasterization.
func Generate(cfg MapConfig) (*MapData, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewRNG(cfg.Seed)
	sample := GeneratePoints(cfg, rng)

	mesh, err := BuildMesh(sample.Points)
	if err != nil {
		return nil, err
	}

	terrain := ComputeTerrain(cfg, mesh)
	climate := ComputeClimate(cfg, mesh, terrain.Elevation)
	hydrology := ComputeHydrology(cfg, mesh, terrain.Elevation, climate.Rainfall)
	for t := range hydrology.Downslope {
		cur := t
		for steps := 0; cur != NoTriangle; steps++ {
			if steps > len(hydrology.Downslope) {
				return nil, &InternalError{Stage: "hydrology", Reason: "downslope cycle survived sink resolution"}
			}
			cur = hydrology.Downslope[cur]
		}
	}
	biomes := ClassifyBiomes(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature)

	data := Rasterize(cfg, mesh, terrain.Elevation, climate.Moisture, climate.Temperature, biomes, hydrology.Rivers)

	return data, nil
}

// Summary is a small rollup of a generated map's composition, useful for
// logging or sanity-checking a run without walking the full pixel grid
// by hand.
type Summary struct {
	Width, Height int
	LandRatio     float64
	OceanRatio    float64
	RiverRatio    float64
	MeanElevation float64
	BiomeCounts   map[Biome]int
}

// Summarize computes land/ocean/river pixel ratios, per-biome pixel
// counts, and mean elevation over a generated map.
func Summarize(m *MapData) Summary {
	s := Summary{
		Width:       m.Width,
		Height:      m.Height,
		BiomeCounts: make(map[Biome]int),
	}

	total := m.Width * m.Height
	if total == 0 {
		return s
	}

	var land, ocean, river int
	var elevSum float64

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b := m.Biomes[y][x]
			s.BiomeCounts[b]++

			switch b {
			case Ocean, ShallowWater, ShallowOcean, DeepOcean:
				ocean++
			default:
				land++
			}

			if m.Rivers[y][x] > 0 {
				river++
			}

			elevSum += m.Elevation[y][x]
		}
	}

	s.LandRatio = float64(land) / float64(total)
	s.OceanRatio = float64(ocean) / float64(total)
	s.RiverRatio = float64(river) / float64(total)
	s.MeanElevation = elevSum / float64(total)

	return s
}
