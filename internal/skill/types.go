// Package skill defines the catalog's central entity types: Skill,
// Category, DataLevel, and QualityScore.
package skill

// Skill represents one normalized catalog entry: a named, versioned
// package of instructional content with classification metadata.
//
// Every field is populated by the normalizer; a zero-value Skill never
// leaves the ingestion pipeline.
type Skill struct {
	// Name is the stable, unique, kebab-case identifier. It doubles as
	// the skill's id throughout the system.
	Name string `json:"name"`

	// DisplayName is the human-facing title. Defaults to Name.
	DisplayName string `json:"displayName"`

	// Description is a short summary shown in listings.
	Description string `json:"description"`

	// Emoji is a single display glyph. Defaults to a package glyph.
	Emoji string `json:"emoji"`

	// Tags is an ordered sequence of labels. Order is irrelevant for
	// filtering but preserved for display.
	Tags []string `json:"tags"`

	// Category references a Category id from the curated set.
	// An unknown category is a warning, not an error; display falls
	// back to the raw id.
	Category string `json:"category"`

	// DataLevel classifies the data-access cost tier, from least to
	// most restrictive. Records may also supply it under the legacy
	// riskLevel key.
	DataLevel DataLevel `json:"dataLevel"`

	// Tools lists the host tools the skill supports.
	Tools []string `json:"tools"`

	// Version is the skill's declared version string.
	Version string `json:"version"`

	// License is the declared license identifier.
	License string `json:"license"`

	// Author is the declared author name.
	Author string `json:"author"`

	// AuthorURL optionally links to the author's page.
	AuthorURL string `json:"authorUrl,omitempty"`

	// Featured marks curator-boosted skills that sort to the front of
	// the default ordering.
	Featured bool `json:"featured"`

	// InstallCount is a non-negative popularity proxy.
	InstallCount int `json:"installCount"`

	// Content is the record's body text, opaque to the catalog.
	Content string `json:"content,omitempty"`

	// Path is the source location the record was read from.
	Path string `json:"path,omitempty"`

	// Rich passthrough fields. The catalog carries these verbatim and
	// never interprets them.
	TestQuestions []string      `json:"testQuestions,omitempty"`
	QualityScore  *QualityScore `json:"qualityScore,omitempty"`
	BestPractices string        `json:"bestPractices,omitempty"`
	Pitfalls      string        `json:"pitfalls,omitempty"`
	FAQ           string        `json:"faq,omitempty"`
	About         string        `json:"about,omitempty"`
	Methodology   string        `json:"methodology,omitempty"`
	DownloadURL   string        `json:"downloadUrl,omitempty"`
}

// Category is one entry of the curated, closed category set.
type Category struct {
	// ID is the stable token referenced by Skill.Category.
	ID string `json:"id" mapstructure:"id"`

	// Name is the localized display name.
	Name string `json:"name" mapstructure:"name"`

	// NameEn is the English display name.
	NameEn string `json:"nameEn" mapstructure:"name_en"`
}

// Categories is a curated category set with id lookup.
type Categories []Category

// Lookup returns the category for id. Unknown ids degrade gracefully to
// a synthesized Category using the raw id for both names.
func (cs Categories) Lookup(id string) Category {
	for _, c := range cs {
		if c.ID == id {
			return c
		}
	}
	return Category{ID: id, Name: id, NameEn: id}
}

// Contains reports whether id is part of the curated set.
func (cs Categories) Contains(id string) bool {
	for _, c := range cs {
		if c.ID == id {
			return true
		}
	}
	return false
}
