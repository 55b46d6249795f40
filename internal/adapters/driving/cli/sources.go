package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	sourcesHeaderStyle = lipgloss.NewStyle().Bold(true)
	sourcesNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the registered dataset source types",
	Long: `Prints the dataset source resolution table in resolution order.
Earlier entries shadow later ones when their predicates overlap.`,
	Args: cobra.NoArgs,
	RunE: runSources,
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

func runSources(cmd *cobra.Command, _ []string) error {
	types := datasetService.SourceTypes()
	if len(types) == 0 {
		cmd.Println("No dataset source types registered.")
		return nil
	}

	cmd.Println(sourcesHeaderStyle.Render(fmt.Sprintf("%-24s %-16s %s", "NAME", "SCHEME", "DESCRIPTION")))
	for _, st := range types {
		name := sourcesNameStyle.Render(fmt.Sprintf("%-24s", st.Name))
		cmd.Printf("%s %-16s %s\n", name, st.Scheme, st.Doc)
	}
	return nil
}
