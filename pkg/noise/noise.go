// Package noise provides the deterministic randomness source for the doodle
// generator.
//
// Random maps an integer-valued seed to a reproducible value in [0, 1) using
// a trigonometric hash. It is intentionally not cryptographic: the contract
// is reproducibility and a visually uniform distribution over the small seed
// ranges the compositor uses, not unpredictability. Determinism is
// per-build; ULP-level sin differences across architectures are an accepted
// limitation as long as seed magnitudes stay modest.
package noise

import (
	"math"

	"github.com/matzehuels/doodle/pkg/shapes"
)

// Hash constants. Chosen so adjacent integer seeds decorrelate at the seed
// strides the compositor actually uses (13-47).
const (
	freq = 12.9898
	amp  = 43758.5453
)

// Random returns a deterministic pseudo-random value in [0, 1).
// It is a pure, total function over all finite seeds.
func Random(seed float64) float64 {
	x := math.Sin(seed*freq) * amp
	return x - math.Floor(x)
}

// Pick selects an element of pool by uniform index. Floor keeps the index
// strictly in bounds even when Random approaches 1; pool must be non-empty.
func Pick(pool []string, seed float64) string {
	return pool[int(Random(seed)*float64(len(pool)))]
}

// PickAngle selects one of the discrete "intentional" rotation angles.
func PickAngle(seed float64) float64 {
	return shapes.Angles[int(Random(seed)*float64(len(shapes.Angles)))]
}

// PickColor selects a color from the given palette.
func PickColor(seed float64, palette []string) string {
	return palette[int(Random(seed)*float64(len(palette)))]
}
