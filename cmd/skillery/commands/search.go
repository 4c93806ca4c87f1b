package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/catalog/query"
	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/skill"
)

var (
	searchInteractive bool
	searchJSON        bool
	searchOutput      string
)

func init() {
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "Pick a result with a fuzzy finder")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	searchCmd.Flags().StringVar(&searchOutput, "output", "", "Artifact directory to read from (default from config)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Search the catalog by case-insensitive substring match against display
names, descriptions, and tags.

Results are ranked by match quality: exact name matches first, then
prefix matches, then name substrings, then tag and description-only
matches. Equal ranks keep the catalog's recommended order.

If no query is provided, all skills are candidates; combined with
--interactive this makes the whole catalog browsable in the fuzzy
finder.`,
	Example: `  # Search for skills mentioning "deploy"
  skillery search deploy

  # Browse interactively
  skillery search --interactive

  # Output as JSON
  skillery search deploy --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(_ *cobra.Command, args []string) error {
	return runSearchWithWriter(os.Stdout, args)
}

// runSearchWithWriter allows injecting a writer for testing.
func runSearchWithWriter(w io.Writer, args []string) error {
	var q string
	if len(args) > 0 {
		q = args[0]
	}

	cat, err := loadCatalog(outputDir(searchOutput))
	if err != nil {
		return err
	}

	results := rankResults(searchCandidates(cat, q), q)

	if searchInteractive {
		return runInteractiveSearch(w, results)
	}

	if searchJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	return outputSearchTabular(w, results)
}

// searchCandidates selects the skills eligible for ranking: everything
// the display-oriented filter matches, plus skills whose id contains the
// query. Without the id pass, a skill named for the query but displayed
// under another title would never surface. Catalog order is preserved.
func searchCandidates(cat catalog.Catalog, q string) catalog.Catalog {
	if q == "" {
		return cat
	}
	lower := strings.ToLower(q)

	matched := make(map[string]bool)
	for _, s := range query.Filter(cat, query.Criteria{Search: q}) {
		matched[s.Name] = true
	}

	out := make(catalog.Catalog, 0, len(matched))
	for _, s := range cat {
		if matched[s.Name] || strings.Contains(strings.ToLower(s.Name), lower) {
			out = append(out, s)
		}
	}
	return out
}

// Match quality tiers, best first.
const (
	scoreExactName       = 100
	scoreNamePrefix      = 75
	scoreNameContains    = 50
	scoreTagMatch        = 35
	scoreDescriptionOnly = 25
)

// rankResults orders already-filtered results by match quality. The sort
// is stable, so equal scores keep the catalog's order. An empty query
// leaves the order untouched.
func rankResults(results catalog.Catalog, q string) catalog.Catalog {
	if q == "" {
		return results
	}
	q = strings.ToLower(q)

	score := func(s skill.Skill) int {
		name := strings.ToLower(s.Name)
		display := strings.ToLower(s.DisplayName)
		switch {
		case name == q || display == q:
			return scoreExactName
		case strings.HasPrefix(name, q) || strings.HasPrefix(display, q):
			return scoreNamePrefix
		case strings.Contains(name, q) || strings.Contains(display, q):
			return scoreNameContains
		}
		for _, tag := range s.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return scoreTagMatch
			}
		}
		return scoreDescriptionOnly
	}

	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b skill.Skill) int {
		return score(b) - score(a)
	})
	return out
}

func outputSearchTabular(w io.Writer, results catalog.Catalog) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCATEGORY%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range results {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s%s%s\n",
			colorGreen, s.Name, colorReset,
			s.Category,
			colorGray, truncate(s.Description, 60), colorReset)
	}

	return tw.Flush()
}

func runInteractiveSearch(w io.Writer, results catalog.Catalog) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		results,
		func(i int) string {
			return fmt.Sprintf("%s %s (%s)", results[i].Emoji, results[i].Name, results[i].Category)
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			s := results[i]
			return fmt.Sprintf("%s %s\nCategory: %s\nData Level: %s\nTags: %s\n\n%s",
				s.Emoji,
				s.DisplayName,
				s.Category,
				s.DataLevel,
				strings.Join(s.Tags, ", "),
				s.Description,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	s := results[idx]
	fmt.Fprintf(w, "Selected: %s\n", s.Name)
	fmt.Fprintf(w, "Category: %s\n", s.Category)
	fmt.Fprintf(w, "Description: %s\n", s.Description)

	return nil
}
