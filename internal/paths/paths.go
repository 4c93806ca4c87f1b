package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under XDG base directories.
const AppName = "skillery"

// Artifact file names emitted by the catalog builder.
const (
	// CatalogFile is the full catalog artifact.
	CatalogFile = "catalog.json"

	// IndexFile is the slim discovery index artifact.
	IndexFile = "index.json"

	// LockFile guards the output directory against concurrent builds.
	LockFile = ".skillery.lock"
)

// SkillFileName is the record file looked for in each skill directory.
const SkillFileName = "SKILL.md"

// ConfigHome returns the base directory for skillery configuration,
// following the XDG Base Directory specification.
func ConfigHome() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DataHome returns the default output directory for built artifacts.
func DataHome() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// CatalogPath returns the full catalog artifact path under dir, or under
// the default data home when dir is empty.
func CatalogPath(dir string) string {
	if dir == "" {
		dir = DataHome()
	}
	return filepath.Join(dir, CatalogFile)
}

// IndexPath returns the slim index artifact path under dir, or under the
// default data home when dir is empty.
func IndexPath(dir string) string {
	if dir == "" {
		dir = DataHome()
	}
	return filepath.Join(dir, IndexFile)
}
