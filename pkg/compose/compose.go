// Package compose implements the placement engine of the doodle generator.
//
// Composite walks an ordered list of layer specifications back to front and
// produces one placed element per (layer, index) slot. Every field of an
// element is a pure function of (variant, colorMode, layer, index): the seed
// for slot i is variantOffset + layerBase + i*stride, and each attribute
// reads its own fixed sub-seed offset. There is no cross-element dependency,
// no ambient state, no I/O — two calls with identical inputs produce
// identical output, and elements could be computed in any order or in
// parallel without changing the result.
package compose

import (
	"fmt"

	"github.com/matzehuels/doodle/pkg/noise"
	"github.com/matzehuels/doodle/pkg/pool"
	"github.com/matzehuels/doodle/pkg/shapes"
)

// TileSize is the side length of the square tile coordinate space.
const TileSize = 500.0

// ColorMode selects the active palette and opacity bands.
type ColorMode string

// Supported color modes.
const (
	ModeLight ColorMode = "light"
	ModeDark  ColorMode = "dark"
)

// ParseMode validates a color mode name. The empty string maps to light.
func ParseMode(s string) (ColorMode, error) {
	switch s {
	case "", "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// Palette returns the ordered color palette for the mode.
func (m ColorMode) Palette() []string {
	if m == ModeDark {
		return shapes.PaletteDark
	}
	return shapes.PaletteLight
}

// Element is one placed shape in the tile coordinate space.
type Element struct {
	Path        string  `json:"path"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Rotation    float64 `json:"rotation"`
	Scale       float64 `json:"scale"`
	Color       string  `json:"color"`
	Opacity     float64 `json:"opacity"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Fill        bool    `json:"fill,omitempty"`
}

// Band is a half-open [Min, Min+Span) sampling range.
type Band struct {
	Min  float64 `toml:"min"`
	Span float64 `toml:"span"`
}

func (b Band) at(r float64) float64 { return b.Min + r*b.Span }

// PoolKind selects which shape source a layer samples from.
type PoolKind string

// Layer shape sources.
const (
	PoolThemed     PoolKind = "themed"     // the variant's weighted pool
	PoolDecorative PoolKind = "decorative" // the fixed decorative catalog
)

// LayerSpec describes one density/size/opacity band of the composition.
// Strides are at least 13 so the per-element attribute sub-seeds (offsets
// 0-9) never overlap between neighboring elements.
type LayerSpec struct {
	Name         string
	Count        int
	SeedBase     int
	SeedStride   int
	Scale        Band
	Light        Band // opacity band in light mode
	Dark         Band // opacity band in dark mode, strictly below Light
	StrokeWidth  float64
	Fill         bool
	Pool         PoolKind
	Discrete     bool    // rotation from the fixed angle set instead of [0,360)
	AccentChance float64 // fraction of elements recolored with a brand accent
}

// Config carries the tunable constants of the compositor. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	Layers          []LayerSpec
	AccentPrimary   string
	AccentSecondary string
	EmphasisWeight  map[pool.Variant]int // overrides pool weights when non-nil
}

// Per-element attribute sub-seed offsets. The shape itself reads offset 0.
const (
	seedX      = 1
	seedY      = 2
	seedRot    = 3
	seedScale  = 4
	seedOpac   = 5
	seedColor  = 6
	seedAccent = 8
	seedFlip   = 9
)

// Composite generates the full ordered element list for a variant and color
// mode using the canonical layer constants.
func Composite(v pool.Variant, mode ColorMode) []Element {
	return CompositeConfig(DefaultConfig(), v, mode)
}

// CompositeConfig generates the element list with explicit tuning constants.
func CompositeConfig(cfg Config, v pool.Variant, mode ColorMode) []Element {
	themed := themedPool(cfg, v)
	palette := mode.Palette()

	var out []Element
	for _, layer := range cfg.Layers {
		src := themed
		if layer.Pool == PoolDecorative {
			src = shapes.Decorative
		}
		for i := 0; i < layer.Count; i++ {
			seed := float64(v.Offset() + layer.SeedBase + i*layer.SeedStride)
			out = append(out, place(layer, seed, src, palette, mode, cfg))
		}
	}
	return out
}

func place(layer LayerSpec, seed float64, src, palette []string, mode ColorMode, cfg Config) Element {
	e := Element{
		Path:        noise.Pick(src, seed),
		X:           noise.Random(seed+seedX) * TileSize,
		Y:           noise.Random(seed+seedY) * TileSize,
		Scale:       layer.Scale.at(noise.Random(seed + seedScale)),
		Color:       noise.PickColor(seed+seedColor, palette),
		StrokeWidth: layer.StrokeWidth,
		Fill:        layer.Fill,
	}

	if layer.Discrete {
		e.Rotation = noise.PickAngle(seed + seedRot)
	} else {
		e.Rotation = noise.Random(seed+seedRot) * 360
	}

	band := layer.Light
	if mode == ModeDark {
		band = layer.Dark
	}
	e.Opacity = band.at(noise.Random(seed + seedOpac))

	if layer.AccentChance > 0 && noise.Random(seed+seedAccent) < layer.AccentChance {
		if noise.Random(seed+seedFlip) < 0.5 {
			e.Color = cfg.AccentPrimary
		} else {
			e.Color = cfg.AccentSecondary
		}
	}
	return e
}

func themedPool(cfg Config, v pool.Variant) []string {
	if w, ok := cfg.EmphasisWeight[v]; ok && w != v.Weight() {
		return pool.BuildWeighted(v, w)
	}
	return pool.Build(v)
}
