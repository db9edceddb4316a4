package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/polytopia/wythoff/pkg/catalog"
)

// listCommand creates the list command for browsing the polytope catalog.
func (c *CLI) listCommand() *cobra.Command {
	var (
		catalogFile string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the polytopes in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Builtin()
			if catalogFile != "" {
				var err error
				if cat, err = catalog.LoadFile(catalogFile); err != nil {
					return err
				}
			}
			if interactive {
				return runCatalogPicker(cat)
			}
			printCatalog(cat)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogFile, "catalog", "", "custom catalog file (TOML)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick an entry interactively")

	return cmd
}

// printCatalog renders the catalog as a table.
func printCatalog(cat *catalog.Catalog) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, cat.Len())
	for _, e := range cat.Entries() {
		rows = append(rows, []string{
			e.Name,
			formatSymbol(e.Symbol),
			formatDistances(e.Distances, e.Snub),
			e.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Symbol", "Distances", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			if col == 3 {
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printNextStep("Build one", "wythoff build <name>")
}

// runCatalogPicker shows the interactive entry picker and prints the build
// command for the selection.
func runCatalogPicker(cat *catalog.Catalog) error {
	model := NewCatalogListModel(cat.Entries())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	m, ok := final.(CatalogListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	printNextStep("Build it", "wythoff build "+m.Selected.Name)
	return nil
}

// formatSymbol renders a Coxeter symbol as "(4, 2, 3)".
func formatSymbol(symbol []int) string {
	parts := make([]string, len(symbol))
	for i, m := range symbol {
		parts[i] = fmt.Sprintf("%d", m)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatDistances renders the distance vector, or the snub marker for
// entries that default their distances.
func formatDistances(dist []float64, snub bool) string {
	if dist == nil {
		if snub {
			return "snub"
		}
		return "—"
	}
	parts := make([]string, len(dist))
	for i, d := range dist {
		parts[i] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", d), "0"), ".")
	}
	s := "(" + strings.Join(parts, ", ") + ")"
	if snub {
		return "snub " + s
	}
	return s
}
