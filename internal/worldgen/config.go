// Package worldgen procedurally synthesizes a fantasy-world map: an ordered
// pipeline of point sampling, Delaunay meshing, terrain, climate, hydrology,
// and biome classification, rasterized onto a pixel grid.
// See design doc Section 4.
package worldgen

// MapConfig is the immutable input record for a single generation run.
// Every field must be provided with a value in its documented range;
// Generate validates the whole record up front and returns a *ConfigError
// for the first offending field.
type MapConfig struct {
	Seed   string
	Width  int
	Height int

	SeaLevel        float64 // [0.1, 0.7]
	OceanRatio      float64 // [0, 1]
	IslandFrequency float64 // >= 0

	BiomeDensity      float64 // > 0, point density multiplier
	MountainFrequency float64 // [0, 1]
	MountainHeight    float64 // [0.1, 1]
	Jaggedness        float64 // [0, 1]
	PointDeviation    float64 // [0, 0.5]

	WindAngleDeg float64 // [0, 360)
	Raininess    float64 // roughly [0, 2]
	RainShadow   float64 // roughly [0, 2]
	Evaporation  float64 // roughly [0, 2]

	Rivers       float64 // global flow scale
	RiverMinFlow float64
	RiverWidth   float64
}

// DefaultMapConfig returns a reasonable starting configuration for a
// medium-sized map.
func DefaultMapConfig() MapConfig {
	return MapConfig{
		Seed:   "default-seed",
		Width:  512,
		Height: 512,

		SeaLevel:        0.4,
		OceanRatio:      0.2,
		IslandFrequency: 0.3,

		BiomeDensity:      1.0,
		MountainFrequency: 0.4,
		MountainHeight:    0.6,
		Jaggedness:        0.5,
		PointDeviation:    0.3,

		WindAngleDeg: 225,
		Raininess:    1.0,
		RainShadow:   1.0,
		Evaporation:  0.5,

		Rivers:       1.0,
		RiverMinFlow: 0.1,
		RiverWidth:   1.0,
	}
}

// SmallMapConfig returns a tiny configuration for fast tests and iteration.
func SmallMapConfig() MapConfig {
	cfg := DefaultMapConfig()
	cfg.Seed = "small-test-seed"
	cfg.Width = 64
	cfg.Height = 48
	return cfg
}

// Validate checks every field against its documented range, returning the
// first violation found. A nil return means the config is safe to generate
// from.
func (c MapConfig) Validate() error {
	if c.Seed == "" {
		return &ConfigError{Field: "Seed", Reason: "must not be empty"}
	}
	if c.Width <= 0 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.SeaLevel < 0.1 || c.SeaLevel > 0.7 {
		return &ConfigError{Field: "SeaLevel", Reason: "must be in [0.1, 0.7]"}
	}
	if c.OceanRatio < 0 || c.OceanRatio > 1 {
		return &ConfigError{Field: "OceanRatio", Reason: "must be in [0, 1]"}
	}
	if c.IslandFrequency < 0 {
		return &ConfigError{Field: "IslandFrequency", Reason: "must be >= 0"}
	}
	if c.BiomeDensity <= 0 {
		return &ConfigError{Field: "BiomeDensity", Reason: "must be > 0"}
	}
	if c.MountainFrequency < 0 || c.MountainFrequency > 1 {
		return &ConfigError{Field: "MountainFrequency", Reason: "must be in [0, 1]"}
	}
	if c.MountainHeight < 0.1 || c.MountainHeight > 1 {
		return &ConfigError{Field: "MountainHeight", Reason: "must be in [0.1, 1]"}
	}
	if c.Jaggedness < 0 || c.Jaggedness > 1 {
		return &ConfigError{Field: "Jaggedness", Reason: "must be in [0, 1]"}
	}
	if c.PointDeviation < 0 || c.PointDeviation > 0.5 {
		return &ConfigError{Field: "PointDeviation", Reason: "must be in [0, 0.5]"}
	}
	if c.WindAngleDeg < 0 || c.WindAngleDeg >= 360 {
		return &ConfigError{Field: "WindAngleDeg", Reason: "must be in [0, 360)"}
	}
	if c.Raininess < 0 || c.Raininess > 2 {
		return &ConfigError{Field: "Raininess", Reason: "must be in [0, 2]"}
	}
	if c.RainShadow < 0 || c.RainShadow > 2 {
		return &ConfigError{Field: "RainShadow", Reason: "must be in [0, 2]"}
	}
	if c.Evaporation < 0 || c.Evaporation > 2 {
		return &ConfigError{Field: "Evaporation", Reason: "must be in [0, 2]"}
	}
	if c.Rivers < 0 {
		return &ConfigError{Field: "Rivers", Reason: "must be >= 0"}
	}
	if c.RiverMinFlow < 0 {
		return &ConfigError{Field: "RiverMinFlow", Reason: "must be >= 0"}
	}
	if c.RiverWidth < 0 {
		return &ConfigError{Field: "RiverWidth", Reason: "must be >= 0"}
	}
	return nil
}
