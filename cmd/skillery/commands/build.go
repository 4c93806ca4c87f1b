package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/errors"
)

var (
	buildSource string
	buildOutput string
)

func init() {
	buildCmd.Flags().StringVar(&buildSource, "source", "", "Source directory of skill records (default from config)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "Output directory for catalog artifacts (default from config)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the catalog from a directory of skill records",
	Long: `Build scans the source directory for skill records (one SKILL.md per
subdirectory), parses and normalizes them in parallel, and writes two
artifacts to the output directory: the full catalog and a slim
discovery index.

Records with a malformed metadata header are skipped with a warning.
Two records claiming the same skill id abort the build. The command
always prints a per-record tally, so a dropped record is visible even
on an otherwise successful run.`,
	Example: `  # Build from the configured source directory
  skillery build

  # Build from an explicit source into an explicit output
  skillery build --source ./skills --output ./dist`,
	RunE: runBuild,
}

func runBuild(_ *cobra.Command, _ []string) error {
	return runBuildWithWriter(os.Stdout)
}

// runBuildWithWriter allows injecting a writer for testing.
func runBuildWithWriter(w io.Writer) error {
	source := buildSource
	if source == "" {
		source = cfg.SourceDir
	}
	output := outputDir(buildOutput)

	builder := catalog.NewBuilder(cfg.CategorySet(), cfg.LevelSet(),
		catalog.WithLogger(slog.Default()))

	cat, report, err := builder.Build(source)
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrSourceUnreadable):
			return errors.NewSystemError(err, "check that the source directory exists and is readable")
		case errors.Is(err, errors.ErrDuplicateSkill):
			return errors.NewUserError(err, "rename one of the conflicting skill directories")
		}
		return err
	}

	if err := builder.WriteArtifacts(output, cat); err != nil {
		return errors.NewSystemError(err, "check that the output directory is writable")
	}

	report.Log(slog.Default())

	status := "clean"
	if !report.Clean() {
		status = "with findings"
	}
	fmt.Fprintf(w, "Built %d skill(s) into %s (%s)\n", len(cat), output, status)
	fmt.Fprintf(w, "  discovered: %d  built: %d  skipped: %d  warnings: %d\n",
		report.Discovered, report.Built, report.Skipped, len(report.Warnings))

	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "  %swarning%s %s: %s\n", colorGray, colorReset, warn.Name, warn.Message)
	}

	return nil
}
