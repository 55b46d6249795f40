package cli

import (
	"github.com/spf13/cobra"
)

var getOutputDir string

var getCmd = &cobra.Command{
	Use:   "get [reference]",
	Short: "Fetch a dataset to the local filesystem",
	Long: `Resolves a raw dataset reference and downloads it. Without --output the
store chooses the destination: the existing path for local data, a
fresh uniquely-named directory otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getOutputDir, "output", "o", "", "destination directory")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	path, src, err := datasetService.Fetch(cmd.Context(), args[0], getOutputDir)
	if err != nil {
		return err
	}

	cmd.Printf("Resolved %s via %s\n", src.URI, src.TypeName)
	cmd.Println(path)
	return nil
}
