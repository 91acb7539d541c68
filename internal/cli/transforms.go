package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/pnmedit/internal/transform"
)

var transformsCmd = &cobra.Command{
	Use:   "transforms",
	Short: "List available transforms",
	Long: `List the transforms that can be given as the option argument.

Examples:
  pnmedit grayscale binary out photo.ppm
  pnmedit --flipY --ascii out photo.pgm`,
	Args: cobra.NoArgs,
	RunE: runTransforms,
}

func init() {
	rootCmd.AddCommand(transformsCmd)
}

func runTransforms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "NAME\tOUTPUT\tDESCRIPTION")
	fmt.Fprintln(w, "----\t------\t-----------")

	for _, name := range transform.List() {
		t, err := transform.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, outputClass(t.Name), t.Description)
	}
	return w.Flush()
}

// outputClass describes the color class a transform produces.
func outputClass(name string) string {
	switch name {
	case transform.OpGrayscale.String():
		return "gray"
	case transform.OpSepia.String():
		return "color"
	default:
		return "unchanged"
	}
}
