// Command mapgen generates a fantasy-world map from a seed and prints a
// summary of its composition.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/romxai/world-map-generator/internal/cache"
	"github.com/romxai/world-map-generator/internal/worldgen"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := worldgen.DefaultMapConfig()

	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "generation seed")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "map width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "map height in pixels")
	flag.Float64Var(&cfg.SeaLevel, "sea-level", cfg.SeaLevel, "sea level, in [0.1, 0.7]")
	flag.Float64Var(&cfg.MountainHeight, "mountain-height", cfg.MountainHeight, "mountain height, in [0.1, 1]")
	flag.Float64Var(&cfg.WindAngleDeg, "wind-angle", cfg.WindAngleDeg, "prevailing wind direction in degrees")
	flag.Float64Var(&cfg.Rivers, "rivers", cfg.Rivers, "global river flow scale")
	out := flag.String("out", "", "write the generated map as JSON to this path")
	cachePath := flag.String("cache", "", "sqlite path for caching generation results")
	flag.Parse()

	slog.Info("mapgen — procedural world map generator")
	slog.Info("config",
		"seed", cfg.Seed,
		"width", cfg.Width,
		"height", cfg.Height,
		"sea_level", cfg.SeaLevel,
		"mountain_height", cfg.MountainHeight,
		"wind_angle_deg", cfg.WindAngleDeg,
		"rivers", cfg.Rivers,
	)

	var store *cache.Store
	var fingerprint string
	if *cachePath != "" {
		var err error
		store, err = cache.Open(*cachePath)
		if err != nil {
			slog.Error("failed to open cache", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		fingerprint = cache.Fingerprint(cfg)
		if cached, ok, err := store.Get(fingerprint); err != nil {
			slog.Warn("cache lookup failed", "error", err)
		} else if ok {
			slog.Info("cache hit", "fingerprint", fingerprint)
			report(cached)
			return
		}
	}

	slog.Info("generating map...")
	data, err := worldgen.Generate(cfg)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if store != nil {
		if err := store.Put(fingerprint, data); err != nil {
			slog.Warn("cache write failed", "error", err)
		}
	}

	report(data)

	if *out != "" {
		encoded, err := json.Marshal(data)
		if err != nil {
			slog.Error("failed to encode map", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, encoded, 0644); err != nil {
			slog.Error("failed to write map", "error", err)
			os.Exit(1)
		}
		slog.Info("wrote map", "path", *out)
	}
}

func report(data *worldgen.MapData) {
	s := worldgen.Summarize(data)
	slog.Info("map ready",
		"width", s.Width,
		"height", s.Height,
		"land_ratio", fmt.Sprintf("%.3f", s.LandRatio),
		"ocean_ratio", fmt.Sprintf("%.3f", s.OceanRatio),
		"river_ratio", fmt.Sprintf("%.4f", s.RiverRatio),
		"mean_elevation", fmt.Sprintf("%.3f", s.MeanElevation),
	)
	for b, count := range s.BiomeCounts {
		slog.Info("biome", "name", biomeName(b), "pixels", count)
	}
}

func biomeName(b worldgen.Biome) string {
	names := map[worldgen.Biome]string{
		worldgen.Ocean:                   "ocean",
		worldgen.ShallowWater:            "shallow_water",
		worldgen.ShallowOcean:            "shallow_ocean",
		worldgen.DeepOcean:               "deep_ocean",
		worldgen.Snow:                    "snow",
		worldgen.Tundra:                  "tundra",
		worldgen.Mountain:                "mountain",
		worldgen.Shrubland:               "shrubland",
		worldgen.Taiga:                   "taiga",
		worldgen.TemperateDesert:         "temperate_desert",
		worldgen.DeciduousForest:         "deciduous_forest",
		worldgen.RainForest:              "rain_forest",
		worldgen.Desert:                  "desert",
		worldgen.Grassland:               "grassland",
		worldgen.SubtropicalDesert:       "subtropical_desert",
		worldgen.TropicalSeasonalForest: "tropical_seasonal_forest",
		worldgen.TropicalRainForest:     "tropical_rain_forest",
		worldgen.Beach:                  "beach",
	}
	if name, ok := names[b]; ok {
		return name
	}
	return "unknown"
}
