package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/doodle/pkg/cache"
	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/pool"
	"github.com/matzehuels/doodle/pkg/render/tile"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"datauri", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.ParsedVariant() != pool.Default {
		t.Errorf("variant = %v, want default", opts.ParsedVariant())
	}
	if opts.ParsedMode() != compose.ModeLight {
		t.Errorf("mode = %v, want light", opts.ParsedMode())
	}
	if opts.TileSize != DefaultTileSize {
		t.Errorf("tile size = %d, want %d", opts.TileSize, DefaultTileSize)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("logger not defaulted")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error: %v", err)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown variant", Options{Variant: "cinematic"}},
		{"unknown mode", Options{Mode: "sepia"}},
		{"bad format", Options{Formats: []string{"bmp"}}},
		{"tile size too small", Options{TileSize: -1}},
		{"tile size too large", Options{TileSize: 20000}},
		{"scale too large", Options{Scale: 50}},
		{"missing theme file", Options{ThemePath: "/nonexistent/theme.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults() accepted invalid options")
			}
		})
	}
}

func TestOptionsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	content := `[accents]
primary = "#0EA5E9"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	opts := Options{ThemePath: path}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.ThemeHash() == "" {
		t.Error("theme hash not set")
	}
	if opts.Config().AccentPrimary != "#0EA5E9" {
		t.Errorf("accent = %q, want theme override", opts.Config().AccentPrimary)
	}
	if opts.TileKeyOpts().ThemeHash != opts.ThemeHash() {
		t.Error("tile key opts missing theme hash")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Formats: []string{FormatSVG, FormatPNG}, Scale: 3.0}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if got := opts.ArtifactKeyOpts(FormatPNG).Scale; got != 3.0 {
		t.Errorf("png scale = %v, want 3.0", got)
	}
	// Scale must not leak into vector formats.
	if got := opts.ArtifactKeyOpts(FormatSVG).Scale; got != 0 {
		t.Errorf("svg scale = %v, want 0", got)
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	opts := Options{
		Variant: "tech",
		Mode:    "dark",
		Formats: []string{FormatSVG, FormatJSON, FormatDataURI},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := compose.Composite(pool.Tech, compose.ModeDark)
	if result.Stats.ElementCount != len(want) {
		t.Errorf("element count = %d, want %d", result.Stats.ElementCount, len(want))
	}
	if result.ElementsHash == "" {
		t.Error("elements hash not set")
	}
	if result.CacheInfo.ComposeHit || result.CacheInfo.SerializeHit {
		t.Error("first run reported cache hits")
	}

	svg := result.Artifacts[FormatSVG]
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Error("svg artifact missing <svg prefix")
	}
	if !strings.HasPrefix(string(result.Artifacts[FormatDataURI]), "data:image/svg+xml") {
		t.Error("datauri artifact missing prefix")
	}

	doc, err := tile.UnmarshalJSON(result.Artifacts[FormatJSON])
	if err != nil {
		t.Fatalf("json artifact invalid: %v", err)
	}
	if len(doc.Elements) != len(want) {
		t.Errorf("json element count = %d, want %d", len(doc.Elements), len(want))
	}
}

func TestExecuteCacheHits(t *testing.T) {
	runner := NewRunner(cache.NewMemoryCache(), nil, nil)
	defer runner.Close()

	ctx := context.Background()

	first, err := runner.Execute(ctx, Options{Variant: "video", Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}

	second, err := runner.Execute(ctx, Options{Variant: "video", Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}

	if !second.CacheInfo.ComposeHit {
		t.Error("second run missed compose cache")
	}
	if !second.CacheInfo.SerializeHit {
		t.Error("second run missed artifact cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from original")
	}

	refreshed, err := runner.Execute(ctx, Options{Variant: "video", Formats: []string{FormatSVG}, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if refreshed.CacheInfo.ComposeHit {
		t.Error("refresh run hit compose cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], refreshed.Artifacts[FormatSVG]) {
		t.Error("refresh produced different artifact")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	runner := NewRunner(nil, nil, nil) // NullCache
	defer runner.Close()

	ctx := context.Background()

	a, err := runner.Execute(ctx, Options{Variant: "academic", Mode: "light", Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	b, err := runner.Execute(ctx, Options{Variant: "academic", Mode: "light", Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("identical options produced different SVG")
	}
	if a.ElementsHash != b.ElementsHash {
		t.Error("identical options produced different element hashes")
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), Options{Variant: "nope"}); err == nil {
		t.Error("Execute() accepted unknown variant")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	if runner.Cache == nil || runner.Keyer == nil || runner.Logger == nil {
		t.Error("NewRunner() left nil fields")
	}
}
