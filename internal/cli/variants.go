package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/doodle/pkg/pool"
	"github.com/matzehuels/doodle/pkg/shapes"
)

// variantsCommand creates the variants command listing the built-in pools.
func (c *CLI) variantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the built-in tile variants",
		Long: `List the built-in tile variants.

Each variant biases the shared icon library toward a thematic catalog by
repeating that catalog in its sampling pool. The seed offset keeps every
variant in its own region of the noise function, so two variants never
produce overlapping compositions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printVariantsTable()
			printNewline()
			printNextStep("Render one", "doodle render tech")
			return nil
		},
	}
}

// printVariantsTable renders the variant catalog as a bordered table.
func printVariantsTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, v := range pool.All() {
		rows = append(rows, []string{
			string(v),
			strconv.Itoa(v.Offset()),
			strconv.Itoa(len(v.Emphasis())),
			strconv.Itoa(v.Weight()),
			strconv.Itoa(len(pool.Build(v))),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Variant", "Seed offset", "Emphasis icons", "Weight", "Pool size").
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
	printDetail("Shared library: %d icons across %d catalogs", len(shapes.Library), 8)
}
