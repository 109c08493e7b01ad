package compose

import "github.com/matzehuels/doodle/pkg/shapes"

// DefaultConfig returns the canonical tuning constants. These encode the
// visual design intent and are the single source of truth; the theme package
// may override individual values from a TOML file.
//
// Dark opacity bands sit strictly below the light bands for the same layer
// (dark surfaces need less contrast to read as present): every dark Min is
// lower and no dark Span exceeds the light Span, so for any shared seed
// light > dark holds with a gap of at least Light.Min - Dark.Min.
func DefaultConfig() Config {
	return Config{
		AccentPrimary:   shapes.AccentPrimary,
		AccentSecondary: shapes.AccentSecondary,
		Layers: []LayerSpec{
			{
				Name:        "back",
				Count:       10,
				SeedBase:    0,
				SeedStride:  13,
				Scale:       Band{Min: 1.6, Span: 1.4},
				Light:       Band{Min: 0.08, Span: 0.06},
				Dark:        Band{Min: 0.05, Span: 0.05},
				StrokeWidth: 1.2,
				Pool:        PoolThemed,
			},
			{
				Name:        "mid",
				Count:       14,
				SeedBase:    200,
				SeedStride:  17,
				Scale:       Band{Min: 1.0, Span: 0.9},
				Light:       Band{Min: 0.16, Span: 0.10},
				Dark:        Band{Min: 0.13, Span: 0.08},
				StrokeWidth: 1.5,
				Pool:        PoolThemed,
				Discrete:    true,
			},
			{
				Name:        "front",
				Count:       8,
				SeedBase:    500,
				SeedStride:  19,
				Scale:       Band{Min: 0.8, Span: 0.6},
				Light:       Band{Min: 0.30, Span: 0.15},
				Dark:        Band{Min: 0.22, Span: 0.12},
				StrokeWidth: 1.8,
				Pool:        PoolThemed,
				Discrete:    true,
			},
			{
				Name:         "accent",
				Count:        5,
				SeedBase:     800,
				SeedStride:   23,
				Scale:        Band{Min: 0.9, Span: 0.7},
				Light:        Band{Min: 0.35, Span: 0.20},
				Dark:         Band{Min: 0.26, Span: 0.14},
				StrokeWidth:  2.0,
				Pool:         PoolThemed,
				Discrete:     true,
				AccentChance: 0.3,
			},
			{
				Name:        "micro",
				Count:       20,
				SeedBase:    1000,
				SeedStride:  13,
				Scale:       Band{Min: 0.35, Span: 0.25},
				Light:       Band{Min: 0.12, Span: 0.08},
				Dark:        Band{Min: 0.09, Span: 0.06},
				StrokeWidth: 1.0,
				Pool:        PoolThemed,
			},
			{
				Name:         "decorative",
				Count:        12,
				SeedBase:     1400,
				SeedStride:   17,
				Scale:        Band{Min: 0.5, Span: 0.5},
				Light:        Band{Min: 0.20, Span: 0.12},
				Dark:         Band{Min: 0.15, Span: 0.09},
				Fill:         true,
				Pool:         PoolDecorative,
				AccentChance: 0.25,
			},
			{
				Name:       "fill",
				Count:      26,
				SeedBase:   1700,
				SeedStride: 13,
				Scale:      Band{Min: 0.22, Span: 0.18},
				Light:      Band{Min: 0.10, Span: 0.06},
				Dark:       Band{Min: 0.07, Span: 0.05},
				Fill:       true,
				Pool:       PoolDecorative,
			},
		},
	}
}
