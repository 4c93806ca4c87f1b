package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillery/internal/catalog/query"
)

var (
	topLimit  int
	topOutput string
)

func init() {
	topCmd.Flags().IntVar(&topLimit, "limit", query.DefaultTopLimit, "Number of skills to show")
	topCmd.Flags().StringVar(&topOutput, "output", "", "Artifact directory to read from (default from config)")
	rootCmd.AddCommand(topCmd)
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most installed skills",
	Example: `  # Top six skills by install count
  skillery top

  # Top ten
  skillery top --limit 10`,
	RunE: runTop,
}

func runTop(_ *cobra.Command, _ []string) error {
	return runTopWithWriter(os.Stdout)
}

// runTopWithWriter allows injecting a writer for testing.
func runTopWithWriter(w io.Writer) error {
	cat, err := loadCatalog(outputDir(topOutput))
	if err != nil {
		return err
	}

	top := query.TopByPopularity(cat, topLimit)
	if len(top) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s#%s\t%sNAME%s\t%sINSTALLS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for i, s := range top {
		fmt.Fprintf(tw, "%d\t%s%s%s\t%d\n",
			i+1,
			colorGreen, s.Name, colorReset,
			s.InstallCount)
	}

	return tw.Flush()
}
