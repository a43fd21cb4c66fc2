package worldgen

import (
	"math"
	"sort"
)

// ClimateResult holds stage-4 output: per-triangle temperature, moisture,
// and normalized rainfall.
type ClimateResult struct {
	Temperature []float64
	Moisture    []float64
	Rainfall    []float64
}

// ComputeClimate assigns temperature from latitude and elevation, then
// propagates moisture and orographic rainfall along the configured wind
// direction, per spec.md section 4.5.
func ComputeClimate(cfg MapConfig, mesh *Mesh, elevation []float64) *ClimateResult {
	temperature := computeTemperature(cfg, mesh, elevation)
	moisture, rainfall := computeMoistureAndRainfall(cfg, mesh, elevation)

	return &ClimateResult{
		Temperature: temperature,
		Moisture:    moisture,
		Rainfall:    rainfall,
	}
}

func computeTemperature(cfg MapConfig, mesh *Mesh, elevation []float64) []float64 {
	T := mesh.NumTriangles()
	temp := make([]float64, T)
	noise := NewNoise(cfg.Seed + "-temperature")
	h := float64(cfg.Height)

	for t := 0; t < T; t++ {
		c := mesh.Centroids[t]
		ny := c.Y / h
		latitude := math.Abs(ny-0.5) * 2

		v := 1 - math.Pow(latitude, 1.2)
		v -= 0.6 * math.Max(0, elevation[t]-cfg.SeaLevel)

		if elevation[t] < cfg.SeaLevel {
			v = 0.8*v + 0.2
		}

		v += noise.Eval2(c.X*0.02, c.Y*0.02) * 0.05

		temp[t] = clamp(v, 0, 1)
	}

	return temp
}

// windOrder returns triangle indices sorted ascending by the projection of
// their centroid onto the wind vector, so upwind triangles come first.
func windOrder(cfg MapConfig, mesh *Mesh) []int {
	T := mesh.NumTriangles()
	theta := cfg.WindAngleDeg * math.Pi / 180
	wx, wy := math.Cos(theta), math.Sin(theta)

	order := make([]int, T)
	proj := make([]float64, T)
	for t := 0; t < T; t++ {
		c := mesh.Centroids[t]
		order[t] = t
		proj[t] = c.X*wx + c.Y*wy
	}

	sort.SliceStable(order, func(i, j int) bool {
		if proj[order[i]] != proj[order[j]] {
			return proj[order[i]] < proj[order[j]]
		}
		return order[i] < order[j]
	})
	return order
}

func computeMoistureAndRainfall(cfg MapConfig, mesh *Mesh, elevation []float64) ([]float64, []float64) {
	T := mesh.NumTriangles()
	moisture := make([]float64, T)
	rainfall := make([]float64, T)

	for t := 0; t < T; t++ {
		if elevation[t] < cfg.SeaLevel {
			moisture[t] = 1.0
		} else {
			moisture[t] = 0.1
		}
	}

	theta := cfg.WindAngleDeg * math.Pi / 180
	baseWX, baseWY := math.Cos(theta), math.Sin(theta)
	turbNoise := NewNoise(cfg.Seed + "-wind-turbulence")

	order := windOrder(cfg, mesh)
	for _, t := range order {
		if mesh.Boundary[t] {
			continue
		}
		if elevation[t] < cfg.SeaLevel-0.1 {
			continue
		}

		c := mesh.Centroids[t]
		perturb := turbNoise.Eval2(c.X*0.01, c.Y*0.01) * 0.2
		wx := baseWX + perturb
		wy := baseWY - perturb
		norm := math.Hypot(wx, wy)
		if norm > 0 {
			wx /= norm
			wy /= norm
		}

		isLand := elevation[t] >= cfg.SeaLevel

		mesh.EachNeighbor(t, func(u int) {
			dx := mesh.Centroids[t].X - mesh.Centroids[u].X
			dy := mesh.Centroids[t].Y - mesh.Centroids[u].Y
			if dx*wx+dy*wy <= 0 {
				return // u is not upwind of t
			}

			moisture[t] += 0.2 * moisture[u]

			dh := elevation[t] - elevation[u]
			if dh > 0 {
				landFactor := 0.3
				if isLand {
					landFactor = 1.0
				}
				rainfall[t] += moisture[u] * cfg.Raininess * math.Min(1, 5*dh) * landFactor

				if dh > 0.1 {
					moisture[t] -= moisture[u] * math.Min(0.9, cfg.RainShadow*2*dh)
				}
			}
		})

		moisture[t] = clamp(moisture[t], 0, 1)

		if elevation[t] < cfg.SeaLevel {
			moisture[t] = 1.0
		} else {
			moisture[t] += rainfall[t] * cfg.Evaporation * 0.3
			moisture[t] = clamp(moisture[t], 0, 1)
		}
	}

	maxRainfall := 0.0
	for _, r := range rainfall {
		if r > maxRainfall {
			maxRainfall = r
		}
	}
	if maxRainfall > 0 {
		for t := range rainfall {
			rainfall[t] /= maxRainfall
		}
	}

	return moisture, rainfall
}
