// Package theme loads optional TOML tuning files that override the built-in
// composition constants.
//
// A theme can replace the brand accent colors, adjust a variant's emphasis
// weight, and retune individual layers (count, opacity bands, stroke width,
// accent fraction). Everything a theme does not mention keeps its canonical
// default from compose.DefaultConfig, so a theme file only states its
// deltas:
//
//	[accents]
//	primary = "#0EA5E9"
//
//	[variants.tech]
//	weight = 4
//
//	[layers.mid]
//	count = 20
//	light = { min = 0.18, span = 0.10 }
//	dark = { min = 0.14, span = 0.08 }
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/doodle/pkg/cache"
	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/errors"
	"github.com/matzehuels/doodle/pkg/pool"
)

// Theme is a parsed tuning file.
type Theme struct {
	Accents  Accents                  `toml:"accents"`
	Variants map[string]VariantTuning `toml:"variants"`
	Layers   map[string]LayerTuning   `toml:"layers"`
}

// Accents overrides the two brand accent colors.
type Accents struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
}

// VariantTuning overrides per-variant pool construction.
type VariantTuning struct {
	Weight int `toml:"weight"`
}

// LayerTuning overrides a single layer's tunable fields. Nil pointers leave
// the canonical value untouched; an explicit count = 0 empties the layer.
type LayerTuning struct {
	Count        *int          `toml:"count"`
	Light        *compose.Band `toml:"light"`
	Dark         *compose.Band `toml:"dark"`
	StrokeWidth  *float64      `toml:"stroke_width"`
	AccentChance *float64      `toml:"accent_chance"`
}

// Load reads and validates a theme file. The returned hash identifies the
// file contents for cache keying.
func Load(path string) (*Theme, string, error) {
	if err := errors.ValidateThemePath(path); err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.New(errors.ErrCodeFileNotFound, "theme file not found: %s", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidTheme, err, "read theme %s", path)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}
	if err := t.Validate(); err != nil {
		return nil, "", err
	}
	return &t, cache.Hash(data), nil
}

// Validate checks the theme against the compositor's invariants before it
// can reach Apply.
func (t *Theme) Validate() error {
	if t.Accents.Primary != "" {
		if err := errors.ValidateHexColor(t.Accents.Primary); err != nil {
			return err
		}
	}
	if t.Accents.Secondary != "" {
		if err := errors.ValidateHexColor(t.Accents.Secondary); err != nil {
			return err
		}
	}

	for name, v := range t.Variants {
		if _, err := pool.Parse(name); err != nil {
			return errors.New(errors.ErrCodeInvalidTheme, "theme tunes unknown variant %q", name)
		}
		if v.Weight == 0 {
			return errors.New(errors.ErrCodeInvalidTheme, "variant %q tuning must set a weight in [1, 8]", name)
		}
		if v.Weight < 1 || v.Weight > 8 {
			return errors.New(errors.ErrCodeInvalidTheme, "variant %q weight %d outside [1, 8]", name, v.Weight)
		}
	}

	defaults := map[string]compose.LayerSpec{}
	for _, l := range compose.DefaultConfig().Layers {
		defaults[l.Name] = l
	}
	for name, l := range t.Layers {
		def, ok := defaults[name]
		if !ok {
			return errors.New(errors.ErrCodeInvalidTheme, "theme tunes unknown layer %q", name)
		}
		if err := l.validate(name, def); err != nil {
			return err
		}
	}
	return nil
}

func (l LayerTuning) validate(name string, def compose.LayerSpec) error {
	if l.Count != nil && (*l.Count < 0 || *l.Count > 200) {
		return errors.New(errors.ErrCodeInvalidTheme, "layer %q count %d outside [0, 200]", name, *l.Count)
	}
	for _, b := range []*compose.Band{l.Light, l.Dark} {
		if b == nil {
			continue
		}
		if b.Min <= 0 || b.Span < 0 || b.Min+b.Span > 1 {
			return errors.New(errors.ErrCodeInvalidTheme, "layer %q opacity band [%v, %v) outside (0, 1]", name, b.Min, b.Min+b.Span)
		}
	}
	// Check the bands as they will be after the merge: a partial override is
	// compared against the layer's effective counterpart, not just its pair
	// inside the file.
	if l.Light != nil || l.Dark != nil {
		light, dark := def.Light, def.Dark
		if l.Light != nil {
			light = *l.Light
		}
		if l.Dark != nil {
			dark = *l.Dark
		}
		if dark.Min >= light.Min || dark.Span > light.Span {
			return errors.New(errors.ErrCodeInvalidTheme, "layer %q dark band must sit strictly below light", name)
		}
	}
	if l.StrokeWidth != nil && *l.StrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "layer %q stroke width %v negative", name, *l.StrokeWidth)
	}
	if l.AccentChance != nil && (*l.AccentChance < 0 || *l.AccentChance > 1) {
		return errors.New(errors.ErrCodeInvalidTheme, "layer %q accent chance %v outside [0, 1]", name, *l.AccentChance)
	}
	return nil
}

// Apply merges the theme over the canonical config and returns the result.
// The input config is not mutated.
func (t *Theme) Apply(cfg compose.Config) (compose.Config, error) {
	out := cfg
	out.Layers = make([]compose.LayerSpec, len(cfg.Layers))
	copy(out.Layers, cfg.Layers)

	if t.Accents.Primary != "" {
		out.AccentPrimary = t.Accents.Primary
	}
	if t.Accents.Secondary != "" {
		out.AccentSecondary = t.Accents.Secondary
	}

	if len(t.Variants) > 0 {
		out.EmphasisWeight = make(map[pool.Variant]int, len(t.Variants))
		for name, v := range t.Variants {
			variant, err := pool.Parse(name)
			if err != nil {
				return compose.Config{}, errors.New(errors.ErrCodeInvalidTheme, "unknown variant %q", name)
			}
			out.EmphasisWeight[variant] = v.Weight
		}
	}

	for name, tuning := range t.Layers {
		idx := -1
		for i, l := range out.Layers {
			if l.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return compose.Config{}, errors.New(errors.ErrCodeInvalidTheme, "unknown layer %q", name)
		}
		l := out.Layers[idx]
		if tuning.Count != nil {
			l.Count = *tuning.Count
		}
		if tuning.Light != nil {
			l.Light = *tuning.Light
		}
		if tuning.Dark != nil {
			l.Dark = *tuning.Dark
		}
		if tuning.StrokeWidth != nil {
			l.StrokeWidth = *tuning.StrokeWidth
		}
		if tuning.AccentChance != nil {
			l.AccentChance = *tuning.AccentChance
		}
		out.Layers[idx] = l
	}
	return out, nil
}

// Describe returns a short human-readable summary for CLI output.
func (t *Theme) Describe() string {
	return fmt.Sprintf("%d variant tunings, %d layer tunings", len(t.Variants), len(t.Layers))
}
