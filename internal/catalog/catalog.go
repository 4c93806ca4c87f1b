// Package catalog builds and loads the skill catalog: the ordered,
// validated collection of normalized skills produced by one build, plus
// the slim discovery index derived from it.
package catalog

import (
	"encoding/json"
	"os"

	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/skill"
)

// Catalog is the complete, ordered sequence of skills from one build.
// Entries are unique by name; featured entries precede non-featured ones
// and each group is ordered by descending install count. The ordering is
// fixed at build time and preserved by loads.
type Catalog []skill.Skill

// Load reads a full catalog artifact from path. This is the query
// layer's entry point; the returned catalog is consumed read-only.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.Wrapf(err, "decoding catalog %s", path)
	}

	return cat, nil
}

// Find returns the skill with the given name, or ErrNotFound.
func (c Catalog) Find(name string) (*skill.Skill, error) {
	for i := range c {
		if c[i].Name == name {
			return &c[i], nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "skill %q", name)
}

// CompareRecommended is the catalog's default ordering: featured entries
// first, then descending install count. Equal keys compare as 0 so a
// stable sort preserves discovery order. The query layer applies the
// same comparator for its "recommended" strategy.
func CompareRecommended(a, b skill.Skill) int {
	if a.Featured != b.Featured {
		if a.Featured {
			return -1
		}
		return 1
	}
	return b.InstallCount - a.InstallCount
}
