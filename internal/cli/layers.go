package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/pipeline"
)

// layersCommand creates the layers command for inspecting the layer stack.
func (c *CLI) layersCommand() *cobra.Command {
	var diagram string

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Inspect the compositing layer stack",
		Long: `Inspect the compositing layer stack.

Tiles are composed from seven layers drawn back to front, each with its own
element count, size range, and opacity band. This command prints the stack
as a table, or with --diagram renders it as a Graphviz SVG showing the
paint order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if diagram != "" {
				return c.runLayersDiagram(cmd.Context(), diagram)
			}
			printLayersTable()
			return nil
		},
	}

	cmd.Flags().StringVarP(&diagram, "diagram", "d", "", "write a Graphviz SVG of the layer stack to this path")

	return cmd
}

// printLayersTable renders the canonical layer constants as a table.
func printLayersTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	cfg := compose.DefaultConfig()
	rows := [][]string{}
	total := 0
	for _, l := range cfg.Layers {
		total += l.Count
		paint := "stroke"
		if l.Fill {
			paint = "fill"
		}
		rows = append(rows, []string{
			l.Name,
			strconv.Itoa(l.Count),
			fmt.Sprintf("%.2f–%.2f", l.Scale.Min, l.Scale.Min+l.Scale.Span),
			fmt.Sprintf("%.2f–%.2f", l.Light.Min, l.Light.Min+l.Light.Span),
			fmt.Sprintf("%.2f–%.2f", l.Dark.Min, l.Dark.Min+l.Dark.Span),
			paint,
			string(l.Pool),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Layer", "Count", "Scale", "Light opacity", "Dark opacity", "Paint", "Pool").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printKeyValue("Elements", strconv.Itoa(total))
	printKeyValue("Tile size", fmt.Sprintf("%d units", pipeline.DefaultTileSize))
	printDetail("Layers are drawn top to bottom; later rows paint over earlier ones")
}

// runLayersDiagram renders the layer stack as a Graphviz SVG.
func (c *CLI) runLayersDiagram(ctx context.Context, output string) error {
	dot := layersToDOT(compose.DefaultConfig())

	svg, err := renderDOT(ctx, dot)
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}

	if err := os.WriteFile(output, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Diagram complete")
	printFile(output)
	return nil
}

// layersToDOT converts the layer stack to Graphviz DOT format. Layers are
// chained in paint order, back to front.
func layersToDOT(cfg compose.Config) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layers {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("\n")

	for _, l := range cfg.Layers {
		label := fmt.Sprintf("%s\n%d elements · scale %.2f–%.2f", l.Name, l.Count, l.Scale.Min, l.Scale.Min+l.Scale.Span)
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if l.Pool == compose.PoolDecorative {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", l.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := 1; i < len(cfg.Layers); i++ {
		fmt.Fprintf(&buf, "  %q -> %q;\n", cfg.Layers[i-1].Name, cfg.Layers[i].Name)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderDOT renders a DOT graph to SVG using Graphviz.
func renderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
