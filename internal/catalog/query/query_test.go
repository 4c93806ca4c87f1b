package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/thoreinstein/skillery/internal/catalog"
)

// testCatalog mirrors the canonical three-record example: A featured
// with 5 installs, B with 100, C with 10, in built order [A, B, C].
func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			Name: "alpha", DisplayName: "Alpha", Description: "Writes release notes",
			Category: "writing", DataLevel: "public", Tags: []string{"release", "notes"},
			Featured: true, InstallCount: 5,
		},
		{
			Name: "beta", DisplayName: "Beta", Description: "Reviews pull requests",
			Category: "coding", DataLevel: "internal", Tags: []string{"git"},
			InstallCount: 100,
		},
		{
			Name: "gamma", DisplayName: "Gamma", Description: "Summarizes research papers",
			Category: "research", DataLevel: "public", Tags: []string{"papers", "summary"},
			InstallCount: 10,
		},
	}
}

func names(cat catalog.Catalog) []string {
	out := make([]string, len(cat))
	for i, s := range cat {
		out[i] = s.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"no criteria returns all", Criteria{}, []string{"alpha", "beta", "gamma"}},
		{"category exact match", Criteria{Category: "coding"}, []string{"beta"}},
		{"data level exact match", Criteria{DataLevel: "public"}, []string{"alpha", "gamma"}},
		{"search display name", Criteria{Search: "ALPHA"}, []string{"alpha"}},
		{"search description", Criteria{Search: "pull requests"}, []string{"beta"}},
		{"search tag", Criteria{Search: "papers"}, []string{"gamma"}},
		{"criteria are ANDed", Criteria{DataLevel: "public", Search: "research"}, []string{"gamma"}},
		{"no match", Criteria{Category: "coding", Search: "papers"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Filter(cat, tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	cat := testCatalog()
	before := names(cat)
	Filter(cat, Criteria{Category: "coding"})
	if !reflect.DeepEqual(names(cat), before) {
		t.Error("Filter mutated its input")
	}
}

func TestSort(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		strategy Strategy
		want     []string
	}{
		{StrategyRecent, []string{"alpha", "beta", "gamma"}},
		{StrategyPopular, []string{"beta", "gamma", "alpha"}},
		{StrategyRecommended, []string{"alpha", "beta", "gamma"}},
		{Strategy("bogus"), []string{"alpha", "beta", "gamma"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			got := names(Sort(cat, tt.strategy))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%q) = %v, want %v", tt.strategy, got, tt.want)
			}
		})
	}

	// Input order untouched.
	if !reflect.DeepEqual(names(cat), []string{"alpha", "beta", "gamma"}) {
		t.Error("Sort mutated its input")
	}
}

func TestSort_Stable(t *testing.T) {
	cat := catalog.Catalog{
		{Name: "one", InstallCount: 7},
		{Name: "two", InstallCount: 7},
		{Name: "three", InstallCount: 7},
	}
	got := names(Sort(cat, StrategyPopular))
	if !reflect.DeepEqual(got, []string{"one", "two", "three"}) {
		t.Errorf("equal keys must keep input order, got %v", got)
	}
}

func TestSort_RecommendedOnFilteredSubset(t *testing.T) {
	cat := testCatalog()
	subset := Filter(cat, Criteria{DataLevel: "public"}) // alpha, gamma
	got := names(Sort(subset, StrategyRecommended))
	if !reflect.DeepEqual(got, []string{"alpha", "gamma"}) {
		t.Errorf("Sort on subset = %v", got)
	}
}

func TestFeaturedOnly(t *testing.T) {
	got := FeaturedOnly(testCatalog())
	if len(got) != 1 || got[0].Name != "alpha" {
		t.Errorf("FeaturedOnly() = %v", names(got))
	}
}

func TestTopByPopularity(t *testing.T) {
	cat := testCatalog()

	got := names(TopByPopularity(cat, 2))
	if !reflect.DeepEqual(got, []string{"beta", "gamma"}) {
		t.Errorf("TopByPopularity(2) = %v", got)
	}

	// Zero limit uses the default of 6; catalog is smaller so all
	// entries come back, most popular first.
	got = names(TopByPopularity(cat, 0))
	if !reflect.DeepEqual(got, []string{"beta", "gamma", "alpha"}) {
		t.Errorf("TopByPopularity(0) = %v", got)
	}
}

func TestFilter_CompletenessProperty(t *testing.T) {
	// Every omitted item must genuinely fail a criterion.
	cat := testCatalog()
	c := Criteria{Search: "re"}
	kept := map[string]bool{}
	for _, s := range Filter(cat, c) {
		kept[s.Name] = true
	}
	for _, s := range cat {
		matches := strings.Contains(strings.ToLower(s.DisplayName), "re") ||
			strings.Contains(strings.ToLower(s.Description), "re") ||
			func() bool {
				for _, tag := range s.Tags {
					if strings.Contains(strings.ToLower(tag), "re") {
						return true
					}
				}
				return false
			}()
		if matches != kept[s.Name] {
			t.Errorf("skill %q: matches=%v kept=%v", s.Name, matches, kept[s.Name])
		}
	}
}
