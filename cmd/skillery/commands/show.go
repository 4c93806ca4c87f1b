package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/skill"
)

const defaultContentPreviewLength = 200

var (
	showJSON   bool
	showFull   bool
	showOutput string
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showFull, "full", false, "Show complete content (default truncated)")
	showCmd.Flags().StringVar(&showOutput, "output", "", "Artifact directory to read from (default from config)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Display detailed skill information",
	Long: `Display one skill's full catalog entry: metadata, classification,
quality score if present, and a content preview.`,
	Example: `  skillery show code-reviewer
  skillery show code-reviewer --full
  skillery show code-reviewer --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(_ *cobra.Command, args []string) error {
	return runShowWithWriter(args[0], os.Stdout)
}

// runShowWithWriter allows injecting a writer for testing.
func runShowWithWriter(name string, w io.Writer) error {
	cat, err := loadCatalog(outputDir(showOutput))
	if err != nil {
		return err
	}

	s, err := cat.Find(name)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NewUserError(err, "run 'skillery list' to see available skills")
		}
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return errors.Wrap(err, "marshaling JSON")
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	return outputShowText(w, s)
}

func outputShowText(w io.Writer, s *skill.Skill) error {
	cats := cfg.CategorySet()

	fmt.Fprintf(w, "%s%s %s%s (%s)\n", colorCyan+colorBold, s.Emoji, s.DisplayName, colorReset, s.Name)
	if s.Description != "" {
		fmt.Fprintf(w, "%s\n", s.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Category: %s\n", cats.Lookup(s.Category).NameEn)
	fmt.Fprintf(w, "Data Level: %s\n", s.DataLevel)
	fmt.Fprintf(w, "Version: %s\n", s.Version)
	fmt.Fprintf(w, "License: %s\n", s.License)
	if s.AuthorURL != "" {
		fmt.Fprintf(w, "Author: %s (%s)\n", s.Author, s.AuthorURL)
	} else {
		fmt.Fprintf(w, "Author: %s\n", s.Author)
	}
	if len(s.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(s.Tags, ", "))
	}
	if len(s.Tools) > 0 {
		fmt.Fprintf(w, "Tools: %s\n", strings.Join(s.Tools, ", "))
	}
	fmt.Fprintf(w, "Installs: %d\n", s.InstallCount)
	if s.Featured {
		fmt.Fprintln(w, "Featured: yes")
	}

	if q := s.QualityScore; q != nil {
		fmt.Fprintf(w, "\nQuality: %d (%s)\n", q.Overall, q.Badge)
		for _, metric := range skill.SixDimensions {
			if v, ok := q.Metrics[metric]; ok {
				fmt.Fprintf(w, "  %s: %d\n", metric, v)
			}
		}
	}

	if s.Content != "" {
		content := s.Content
		truncated := false
		if !showFull && len(content) > defaultContentPreviewLength {
			content = content[:defaultContentPreviewLength]
			truncated = true
		}
		fmt.Fprintln(w, "\nContent Preview:")
		fmt.Fprintf(w, "  %s\n", content)
		if truncated {
			fmt.Fprintln(w, "  [truncated, use --full for complete output]")
		}
	}

	return nil
}
