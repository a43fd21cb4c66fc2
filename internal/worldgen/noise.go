package worldgen

import opensimplex "github.com/ojrac/opensimplex-go"

// Noise is a seeded 2-D gradient-noise function. noise2D(x, y) with
// identical inputs returns identical outputs across a run; two Noise
// values built from the same label return identical sequences.
type Noise struct {
	gen opensimplex.Noise
}

// NewNoise builds a simplex-style gradient-noise generator for one
// compound label (e.g. seed+"-mountains"), deterministically seeded via
// Hash32 so the same label always yields the same field.
func NewNoise(label string) *Noise {
	return &Noise{gen: opensimplex.New(int64(Hash32(label)))}
}

// Eval2 returns a value in [-1, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	return n.gen.Eval2(x, y)
}

// Eval201 returns Eval2 remapped linearly to [0, 1].
func (n *Noise) Eval201(x, y float64) float64 {
	return Remap01(n.Eval2(x, y))
}

// Remap01 linearly maps a value in [-1, 1] to [0, 1].
func Remap01(v float64) float64 {
	return (v + 1) / 2
}

// FBM layers octaves of n starting at frequency freq, multiplying amplitude
// by persistence and doubling frequency each octave, normalizing the result
// back into roughly [-1, 1].
func (n *Noise) FBM(x, y float64, octaves int, freq, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := freq

	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
