// Package query provides the pure read layer over an in-memory catalog:
// filtering, search, sort strategies, and pagination. No function here
// performs I/O or mutates its input; results are fresh slices, so the
// same catalog can be queried concurrently by independent callers.
package query

import (
	"slices"
	"strings"

	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/skill"
)

// Criteria selects catalog entries. Zero-value fields impose no
// constraint; provided fields are ANDed.
type Criteria struct {
	// Category matches Skill.Category exactly. Empty means no filter.
	Category string

	// DataLevel matches Skill.DataLevel exactly. Empty means no filter.
	DataLevel skill.DataLevel

	// Search is a case-insensitive substring matched against the
	// display name, the description, or any tag.
	Search string
}

// Filter returns the entries satisfying every provided criterion,
// preserving catalog order.
func Filter(cat catalog.Catalog, c Criteria) catalog.Catalog {
	search := strings.ToLower(c.Search)

	out := make(catalog.Catalog, 0, len(cat))
	for _, s := range cat {
		if c.Category != "" && s.Category != c.Category {
			continue
		}
		if c.DataLevel != "" && s.DataLevel != c.DataLevel {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// matchesSearch reports whether the lowercased query hits the skill's
// display name, description, or any tag.
func matchesSearch(s skill.Skill, query string) bool {
	if strings.Contains(strings.ToLower(s.DisplayName), query) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Strategy names a sort order.
type Strategy string

// Sort strategies.
const (
	// StrategyRecent preserves the catalog's build-time order, which is
	// assumed chronological/curated.
	StrategyRecent Strategy = "recent"

	// StrategyPopular orders by descending install count.
	StrategyPopular Strategy = "popular"

	// StrategyRecommended orders featured-first, then by descending
	// install count: the builder's comparator, applied again so it also
	// holds on a pre-filtered subset.
	StrategyRecommended Strategy = "recommended"
)

// Strategies lists the recognized sort strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyRecent, StrategyPopular, StrategyRecommended}
}

// Sort returns a copy of the catalog ordered by the given strategy.
// Sorting is stable: equal-key entries keep their relative input order.
// Unrecognized strategies behave like StrategyRecent.
func Sort(cat catalog.Catalog, strategy Strategy) catalog.Catalog {
	out := slices.Clone(cat)

	switch strategy {
	case StrategyPopular:
		slices.SortStableFunc(out, func(a, b skill.Skill) int {
			return b.InstallCount - a.InstallCount
		})
	case StrategyRecommended:
		slices.SortStableFunc(out, catalog.CompareRecommended)
	}

	return out
}

// FeaturedOnly returns the curator-boosted entries, preserving order.
func FeaturedOnly(cat catalog.Catalog) catalog.Catalog {
	out := make(catalog.Catalog, 0, len(cat))
	for _, s := range cat {
		if s.Featured {
			out = append(out, s)
		}
	}
	return out
}

// DefaultTopLimit is the TopByPopularity cutoff when none is given.
const DefaultTopLimit = 6

// TopByPopularity returns the limit most-installed entries. A limit of
// zero or less uses DefaultTopLimit.
func TopByPopularity(cat catalog.Catalog, limit int) catalog.Catalog {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	out := Sort(cat, StrategyPopular)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
