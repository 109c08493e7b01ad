// Package pool builds the weighted shape sampling pools for each thematic
// variant.
//
// Thematic bias is achieved purely through duplication: the pool is the full
// shape library plus N extra copies of the variant's emphasized catalog, so a
// single uniform index lookup yields the emphasized shapes with probability
// N*|emphasis| / (|library| + N*|emphasis|). No weighted-sampling structure
// is involved, which keeps selection a single Pick call.
package pool

import (
	"fmt"
	"sort"
	"sync"

	"github.com/matzehuels/doodle/pkg/shapes"
)

// Variant selects which shape catalog is emphasized and provides seed-space
// isolation from other variants.
type Variant string

// Supported variants.
const (
	Default  Variant = "default"
	Video    Variant = "video"
	Academic Variant = "academic"
	Analysis Variant = "analysis"
	Tech     Variant = "tech"
	Creative Variant = "creative"
)

// variantSpec describes a variant's emphasis and seed isolation.
type variantSpec struct {
	offset   int      // seed offset, spaced far beyond any layer's seed span
	emphasis []string // catalog repeated in the pool
	weight   int      // extra copies of the emphasis catalog
	addon    []string // appended once on top, without repetition
}

var variants = map[Variant]variantSpec{
	Default:  {offset: 0, emphasis: shapes.Abstract, weight: 2},
	Video:    {offset: 10000, emphasis: shapes.Video, weight: 3},
	Academic: {offset: 20000, emphasis: shapes.Study, weight: 3},
	Analysis: {offset: 30000, emphasis: shapes.Analytics, weight: 3},
	Tech:     {offset: 40000, emphasis: shapes.Tech, weight: 3, addon: shapes.Abstract},
	Creative: {offset: 50000, emphasis: shapes.Creative, weight: 4},
}

// All returns the supported variants in stable order.
func All() []Variant {
	out := make([]Variant, 0, len(variants))
	for v := range variants {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return variants[out[i]].offset < variants[out[j]].offset })
	return out
}

// Parse validates a variant name. The empty string maps to Default.
func Parse(s string) (Variant, error) {
	if s == "" {
		return Default, nil
	}
	v := Variant(s)
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("unknown variant %q", s)
	}
	return v, nil
}

// Offset returns the variant's seed offset. Offsets are spaced 10000 apart,
// far exceeding any layer's base+count*stride span, so variants never share
// a seed range.
func (v Variant) Offset() int {
	return variants[v].offset
}

// Weight returns how many extra copies of the emphasis catalog the variant's
// pool carries.
func (v Variant) Weight() int {
	return variants[v].weight
}

// Emphasis returns the variant's emphasized catalog.
func (v Variant) Emphasis() []string {
	return variants[v].emphasis
}

var (
	mu    sync.Mutex
	pools = map[Variant][]string{}
)

// Build returns the sampling pool for a variant. Pools are memoized; callers
// must not mutate the returned slice.
func Build(v Variant) []string {
	mu.Lock()
	defer mu.Unlock()
	if p, ok := pools[v]; ok {
		return p
	}
	p := BuildWeighted(v, variants[v].weight)
	pools[v] = p
	return p
}

// BuildWeighted constructs a pool with an explicit emphasis weight. Unlike
// Build it is not memoized; the theme layer uses it when a tuning file
// overrides the built-in weight.
func BuildWeighted(v Variant, weight int) []string {
	spec := variants[v]
	p := make([]string, 0, len(shapes.Library)+weight*len(spec.emphasis)+len(spec.addon))
	p = append(p, shapes.Library...)
	for i := 0; i < weight; i++ {
		p = append(p, spec.emphasis...)
	}
	p = append(p, spec.addon...)
	return p
}
