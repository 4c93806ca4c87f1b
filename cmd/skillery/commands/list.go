package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/catalog/query"
	"github.com/thoreinstein/skillery/internal/skill"
)

var (
	listCategory  string
	listDataLevel string
	listSearch    string
	listSort      string
	listFeatured  bool
	listPage      int
	listPerPage   int
	listJSON      bool
	listOutput    string
)

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category id")
	listCmd.Flags().StringVar(&listDataLevel, "data-level", "", "Filter by data sensitivity level")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by case-insensitive substring match")
	listCmd.Flags().StringVar(&listSort, "sort", string(query.StrategyRecommended),
		"Sort strategy (recent, popular, recommended)")
	listCmd.Flags().BoolVar(&listFeatured, "featured", false, "Show only featured skills")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number (1-indexed)")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 20, "Entries per page")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listOutput, "output", "", "Artifact directory to read from (default from config)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills from the built catalog",
	Long: `List skills from the built catalog, with optional filtering, sorting,
and pagination.

Filters are ANDed together. The search filter matches the display name,
description, and tags, case-insensitively. Sorting never reorders equal
entries, so ties keep their catalog order.`,
	Example: `  # List everything, recommended order
  skillery list

  # Coding skills that mention "review", most popular first
  skillery list --category coding --search review --sort popular

  # Second page of ten
  skillery list --page 2 --per-page 10

  # Output as JSON
  skillery list --json`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(w io.Writer) error {
	cat, err := loadCatalog(outputDir(listOutput))
	if err != nil {
		return err
	}

	cat = query.Filter(cat, query.Criteria{
		Category:  listCategory,
		DataLevel: skill.DataLevel(listDataLevel),
		Search:    listSearch,
	})

	if listFeatured {
		cat = query.FeaturedOnly(cat)
	}

	cat = query.Sort(cat, query.Strategy(listSort))

	page, err := query.Paginate(cat, listPage, listPerPage)
	if err != nil {
		return err
	}

	if listJSON {
		return outputListJSON(w, page)
	}
	return outputListTabular(w, page)
}

// listOutputJSON is the JSON envelope for a paginated listing.
type listOutputJSON struct {
	Skills     catalog.Catalog `json:"skills"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

func outputListJSON(w io.Writer, page *query.Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listOutputJSON{
		Skills:     page.Items,
		Page:       listPage,
		TotalPages: page.TotalPages,
	})
}

func outputListTabular(w io.Writer, page *query.Page) error {
	if len(page.Items) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCATEGORY%s\t%sLEVEL%s\t%sINSTALLS%s\t%sDESCRIPTION%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range page.Items {
		name := s.Name
		if s.Featured {
			name = "★ " + name
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%d\t%s%s%s\n",
			colorGreen, name, colorReset,
			s.Category,
			s.DataLevel,
			s.InstallCount,
			colorGray, truncate(s.Description, 60), colorReset)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if page.TotalPages > 1 {
		fmt.Fprintf(w, "\nPage %d of %d\n", listPage, page.TotalPages)
	}

	return nil
}
