package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doodle/pkg/compose"
	"github.com/matzehuels/doodle/pkg/pipeline"
	"github.com/matzehuels/doodle/pkg/pool"
)

// previewCommand creates the preview command for browsing variants.
func (c *CLI) previewCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse variants interactively and render one",
		Long: `Browse variants interactively and render one.

The preview command opens a terminal browser over the variant catalog.
Use the arrow keys to move, 'm' to toggle between light and dark mode,
and enter to render the highlighted variant to an SVG file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runPreview drives the variant browser and renders the selection.
func (c *CLI) runPreview(ctx context.Context, noCache bool) error {
	model := newVariantListModel()

	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	m, ok := final.(variantListModel)
	if !ok || m.Selected == nil {
		return nil
	}

	opts := pipeline.Options{
		Variant: string(m.Selected.Variant),
		Mode:    string(m.Selected.Mode),
		Formats: []string{pipeline.FormatSVG},
	}
	return c.runRender(ctx, opts, "", noCache)
}

// =============================================================================
// variantListModel - Interactive variant selection
// =============================================================================

// variantSelection holds the result of the variant browser.
type variantSelection struct {
	Variant pool.Variant
	Mode    compose.ColorMode
}

// variantRow is one precomputed catalog entry shown in the browser.
type variantRow struct {
	variant  pool.Variant
	poolSize int
	elements int
}

// variantListModel is the bubbletea model for interactive variant selection.
type variantListModel struct {
	Rows     []variantRow
	Cursor   int
	Mode     compose.ColorMode
	Selected *variantSelection
}

// newVariantListModel precomputes the catalog stats for the browser.
func newVariantListModel() variantListModel {
	var rows []variantRow
	for _, v := range pool.All() {
		rows = append(rows, variantRow{
			variant:  v,
			poolSize: len(pool.Build(v)),
			elements: len(compose.Composite(v, compose.ModeLight)),
		})
	}
	return variantListModel{
		Rows: rows,
		Mode: compose.ModeLight,
	}
}

func (m variantListModel) Init() tea.Cmd {
	return nil
}

func (m variantListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
		case "m":
			if m.Mode == compose.ModeLight {
				m.Mode = compose.ModeDark
			} else {
				m.Mode = compose.ModeLight
			}
		case "enter":
			m.Selected = &variantSelection{
				Variant: m.Rows[m.Cursor].variant,
				Mode:    m.Mode,
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m variantListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Variant"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  m toggle mode  ⏎ render  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for i, r := range m.Rows {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			string(r.variant),
			strconv.Itoa(r.poolSize),
			strconv.Itoa(r.elements),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Variant", "Pool", "Elements").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  mode: %s  [%d/%d]", m.Mode, m.Cursor+1, len(m.Rows))))

	return b.String()
}
