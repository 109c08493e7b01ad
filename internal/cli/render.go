package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/doodle/pkg/pipeline"
)

// renderCommand creates the render command for generating tiles.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [variant]",
		Short: "Render a background tile for a variant",
		Long: `Render a background tile for a variant.

The render command runs the placement engine for the given variant (default,
video, academic, analysis, tech, creative) and serializes the result to one
or more formats. With no variant argument the neutral default pool is used.

Results are cached locally for faster subsequent runs.

Examples:
  doodle render tech -o tile.svg
  doodle render video --mode dark -f svg,png
  doodle render --format datauri`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Variant = args[0]
			}
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if opts.Scale != 0 && !slices.Contains(opts.Formats, pipeline.FormatPNG) {
				printWarning("--scale only affects png output")
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompose even if cached")

	// Compose flags
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "color mode: light (default), dark")
	cmd.Flags().IntVar(&opts.TileSize, "tile-size", 0, "rendered tile side length in pixels (default 500)")
	cmd.Flags().StringVar(&opts.ThemePath, "theme", "", "TOML theme file overriding tuning constants")

	// Serialize flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, datauri (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "PNG rasterization scale factor (default 2)")

	return cmd
}

// runRender executes the pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	// Normalize here so the default artifact filename carries the resolved
	// variant and mode; Execute validates its own copy of opts.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Composing tile...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return err
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.StopWithSuccess("Render complete")

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		variant:   opts.Variant,
		mode:      opts.Mode,
		output:    output,
	}); err != nil {
		return err
	}

	printStats(result.Stats.ElementCount, opts.Variant, opts.Mode, result.CacheInfo.ComposeHit)
	return nil
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	variant   string
	mode      string
	output    string
}

// formatExtensions maps output formats to file extensions.
var formatExtensions = map[string]string{
	pipeline.FormatSVG:     "svg",
	pipeline.FormatPNG:     "png",
	pipeline.FormatPDF:     "pdf",
	pipeline.FormatJSON:    "json",
	pipeline.FormatDataURI: "txt",
}

// writeArtifacts writes each requested artifact to disk. With a single
// format the output flag names the file directly; with multiple formats it
// acts as a base path and the format extension is appended.
func writeArtifacts(p artifactWriteParams) error {
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("missing artifact for format %q", format)
		}

		path := artifactPath(p.output, p.variant, p.mode, format, len(p.formats) == 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// artifactPath derives the output file path for one format.
func artifactPath(output, variant, mode, format string, single bool) string {
	ext := formatExtensions[format]

	if output == "" {
		return fmt.Sprintf("%s_%s_%s.%s", appName, variant, mode, ext)
	}
	if single {
		return output
	}

	// Multiple formats share output as a base path.
	base := output
	if e := filepath.Ext(output); e != "" {
		if _, known := formatExtensions[strings.TrimPrefix(e, ".")]; known {
			base = strings.TrimSuffix(output, e)
		}
	}
	return base + "." + ext
}
