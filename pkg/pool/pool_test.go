package pool

import (
	"testing"

	"github.com/matzehuels/doodle/pkg/noise"
	"github.com/matzehuels/doodle/pkg/shapes"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"", Default, false},
		{"default", Default, false},
		{"video", Video, false},
		{"tech", Tech, false},
		{"creative", Creative, false},
		{"neon", "", true},
		{"TECH", "", true},
	}
	for _, tt := range tests {
		t.Run("in="+tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %q", tt.in, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if v != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, v, tt.want)
			}
		})
	}
}

func TestOffsetsIsolated(t *testing.T) {
	seen := map[int]Variant{}
	for _, v := range All() {
		off := v.Offset()
		if prev, ok := seen[off]; ok {
			t.Errorf("variants %q and %q share offset %d", prev, v, off)
		}
		seen[off] = v
	}
	// Offsets must be spaced beyond any layer's seed span.
	offsets := All()
	for i := 1; i < len(offsets); i++ {
		gap := offsets[i].Offset() - offsets[i-1].Offset()
		if gap < 10000 {
			t.Errorf("offset gap between %q and %q is %d, want >= 10000", offsets[i-1], offsets[i], gap)
		}
	}
}

func TestBuildMemoized(t *testing.T) {
	a := Build(Video)
	b := Build(Video)
	if len(a) != len(b) {
		t.Fatalf("Build not stable: %d vs %d entries", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Build not deterministic at index %d", i)
		}
	}
}

func TestBuildComposition(t *testing.T) {
	p := Build(Video)
	want := len(shapes.Library) + Video.Weight()*len(shapes.Video)
	if len(p) != want {
		t.Errorf("Video pool size = %d, want %d", len(p), want)
	}

	// Tech carries the abstract add-on once on top of its weighted emphasis.
	p = Build(Tech)
	want = len(shapes.Library) + Tech.Weight()*len(shapes.Tech) + len(shapes.Abstract)
	if len(p) != want {
		t.Errorf("Tech pool size = %d, want %d", len(p), want)
	}
}

func TestThematicBias(t *testing.T) {
	// Sampling 10k draws from the tech pool must over-represent tech shapes
	// relative to their uniform-library share.
	techSet := map[string]bool{}
	for _, s := range shapes.Tech {
		techSet[s] = true
	}

	p := Build(Tech)
	hits := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if techSet[noise.Pick(p, float64(i))] {
			hits++
		}
	}

	baseline := float64(len(shapes.Tech)) / float64(len(shapes.Library))
	expected := float64((1+Tech.Weight())*len(shapes.Tech)) / float64(len(p))
	got := float64(hits) / draws

	if got <= baseline {
		t.Errorf("tech frequency %.4f does not exceed uniform baseline %.4f", got, baseline)
	}
	if diff := got - expected; diff > 0.05 || diff < -0.05 {
		t.Errorf("tech frequency %.4f deviates from expected %.4f beyond tolerance", got, expected)
	}
}
