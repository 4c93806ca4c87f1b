package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/paths"
	"github.com/thoreinstein/skillery/internal/skill"
	"github.com/thoreinstein/skillery/pkg/fileutil"
)

// IndexVersion is the slim index's artifact schema version.
const IndexVersion = "1"

// indexTagLimit caps how many tags the slim projection carries per skill.
const indexTagLimit = 5

// Index is the slim discovery artifact: a reduced projection of the
// catalog regenerated in full on every build, never patched in place.
type Index struct {
	Version     string       `json:"version"`
	LastUpdated time.Time    `json:"lastUpdated"`
	TotalSkills int          `json:"totalSkills"`
	Skills      []IndexEntry `json:"skills"`
}

// IndexEntry is the slim per-skill projection. The opaque content body
// and the rich passthrough fields are dropped; tags are truncated for
// display economy.
type IndexEntry struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Version     string          `json:"version"`
	Author      string          `json:"author"`
	Category    string          `json:"category"`
	DataLevel   skill.DataLevel `json:"dataLevel"`
	Tags        []string        `json:"tags"`
	Featured    bool            `json:"featured"`
	Path        string          `json:"path,omitempty"`
}

// BuildIndex derives the slim index from an ordered catalog.
func (b *Builder) BuildIndex(cat Catalog) *Index {
	entries := make([]IndexEntry, len(cat))
	for i, s := range cat {
		tags := s.Tags
		if len(tags) > indexTagLimit {
			tags = tags[:indexTagLimit]
		}
		entries[i] = IndexEntry{
			Name:        s.Name,
			DisplayName: s.DisplayName,
			Description: s.Description,
			Emoji:       s.Emoji,
			Version:     s.Version,
			Author:      s.Author,
			Category:    s.Category,
			DataLevel:   s.DataLevel,
			Tags:        tags,
			Featured:    s.Featured,
			Path:        s.Path,
		}
	}
	return &Index{
		Version:     IndexVersion,
		LastUpdated: b.now().UTC(),
		TotalSkills: len(cat),
		Skills:      entries,
	}
}

// WriteArtifacts emits the full catalog and the slim index under
// outputDir. An advisory lock serializes concurrent builds so readers
// never observe artifacts from two different runs.
func (b *Builder) WriteArtifacts(outputDir string, cat Catalog) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output directory %s", outputDir)
	}

	lock := flock.New(filepath.Join(outputDir, paths.LockFile))
	if err := lock.Lock(); err != nil {
		return errors.Wrap(err, "locking output directory")
	}
	defer lock.Unlock()

	if err := fileutil.AtomicWriteJSON(paths.CatalogPath(outputDir), cat, 0o644); err != nil {
		return errors.Wrap(err, "writing catalog artifact")
	}

	if err := fileutil.AtomicWriteJSON(paths.IndexPath(outputDir), b.BuildIndex(cat), 0o644); err != nil {
		return errors.Wrap(err, "writing index artifact")
	}

	b.logger.Info("artifacts written",
		"dir", outputDir,
		"skills", len(cat))

	return nil
}

// LoadIndex reads a slim index artifact from path.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading index %s", path)
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, errors.Wrapf(err, "decoding index %s", path)
	}

	return &idx, nil
}
