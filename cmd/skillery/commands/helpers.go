package commands

import (
	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/paths"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// outputDir resolves the artifact directory: an explicit flag wins,
// otherwise the configured output_dir.
func outputDir(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.OutputDir
}

// loadCatalog reads the built catalog from the artifact directory.
func loadCatalog(dir string) (catalog.Catalog, error) {
	cat, err := catalog.Load(paths.CatalogPath(dir))
	if err != nil {
		return nil, errors.NewUserError(err, "run 'skillery build' first")
	}
	return cat, nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
