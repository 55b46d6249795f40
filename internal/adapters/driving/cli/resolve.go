package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [reference]",
	Short: "Resolve a raw dataset reference to its source type",
	Long: `Matches a raw dataset reference - a local path, file:// URI, or remote
URI - against the registered dataset source types and prints the
resolved source.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the resolved source as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	src, err := datasetService.Resolve(args[0])
	if err != nil {
		return err
	}

	if resolveJSON {
		out, err := json.Marshal(struct {
			Type string `json:"type"`
			URI  string `json:"uri"`
		}{Type: src.TypeName, URI: src.URI})
		if err != nil {
			return fmt.Errorf("marshal resolved source: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("Type: %s\n", src.TypeName)
	cmd.Printf("URI:  %s\n", src.URI)
	return nil
}
