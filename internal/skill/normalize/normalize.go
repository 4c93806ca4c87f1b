// Package normalize maps raw record fields to the typed Skill schema.
//
// Normalization is total: it never fails. Every optional field has an
// explicit, per-field default, and any value of the wrong shape degrades
// to that default rather than aborting. The only required input is a
// fallback identifier derived from the record's storage location, which
// guarantees a non-empty skill id even for an empty header.
package normalize

import (
	"github.com/thoreinstein/skillery/internal/skill"
	"github.com/thoreinstein/skillery/internal/skill/parser"
)

// Field defaults applied when a record omits or mangles a value.
const (
	DefaultEmoji    = "📦"
	DefaultVersion  = "v1.0.0"
	DefaultLicense  = "MIT"
	DefaultAuthor   = "Unknown"
	DefaultCategory = "other"
)

// DefaultTools is the host-tool set assumed when a record declares none.
var DefaultTools = []string{"claude-code"}

// Normalizer applies schema defaults against an injected data-level
// vocabulary. The vocabulary is configuration, not a package global, so
// tests can run with synthetic tier sets.
type Normalizer struct {
	levels skill.DataLevels
}

// New creates a Normalizer using the given tier ordering.
// A nil or empty ordering falls back to skill.DefaultDataLevels.
func New(levels skill.DataLevels) *Normalizer {
	if len(levels) == 0 {
		levels = skill.DefaultDataLevels
	}
	return &Normalizer{levels: levels}
}

// Normalize converts a parsed record into a fully-typed Skill.
// fallbackID supplies the identity when the header has no name; it is
// typically the record's directory name.
//
// Category membership is deliberately not checked here: unknown
// categories are a display-time concern (they render with the raw id).
func (n *Normalizer) Normalize(rec *parser.Record, fallbackID string) skill.Skill {
	fields := rec.Fields
	if fields == nil {
		fields = map[string]any{}
	}

	name := asString(fields["name"], "")
	if name == "" {
		name = fallbackID
	}

	s := skill.Skill{
		Name:         name,
		DisplayName:  asString(fields["displayName"], name),
		Description:  asString(fields["description"], ""),
		Emoji:        asString(fields["emoji"], DefaultEmoji),
		Tags:         asStringSlice(fields["tags"], []string{}),
		Category:     asString(fields["category"], DefaultCategory),
		DataLevel:    n.dataLevel(fields),
		Tools:        asStringSlice(fields["tools"], DefaultTools),
		Version:      asString(fields["version"], DefaultVersion),
		License:      asString(fields["license"], DefaultLicense),
		Author:       asString(fields["author"], DefaultAuthor),
		AuthorURL:    asString(fields["authorUrl"], ""),
		Featured:     asBool(fields["featured"]),
		InstallCount: asCount(fields["installCount"]),
		Content:      rec.Body,
		Path:         rec.Path,

		TestQuestions: asStringSlice(fields["testQuestions"], nil),
		QualityScore:  asQualityScore(fields["qualityScore"]),
		BestPractices: asString(fields["bestPractices"], ""),
		Pitfalls:      asString(fields["pitfalls"], ""),
		FAQ:           asString(fields["faq"], ""),
		About:         asString(fields["about"], ""),
		Methodology:   asString(fields["methodology"], ""),
		DownloadURL:   asString(fields["downloadUrl"], ""),
	}

	return s
}

// dataLevel resolves the tier from dataLevel or the legacy riskLevel key.
// Values outside the configured vocabulary degrade to the least
// restrictive tier.
func (n *Normalizer) dataLevel(fields map[string]any) skill.DataLevel {
	raw := asString(fields["dataLevel"], "")
	if raw == "" {
		raw = asString(fields["riskLevel"], "")
	}

	level := skill.DataLevel(raw)
	if !n.levels.Contains(level) {
		return n.levels.Least()
	}
	return level
}

// asQualityScore decodes the optional quality-score block and tags its
// schema variant. Anything that is not a map degrades to nil (absent).
func asQualityScore(v any) *skill.QualityScore {
	m, ok := asMap(v)
	if !ok {
		return nil
	}

	q := &skill.QualityScore{
		Overall: asCount(m["overall"]),
		Badge:   asString(m["badge"], ""),
	}

	if metricsRaw, ok := asMap(m["metrics"]); ok && len(metricsRaw) > 0 {
		metrics := make(map[string]int, len(metricsRaw))
		for k, mv := range metricsRaw {
			metrics[k] = asCount(mv)
		}
		q.Metrics = metrics
	}

	q.Schema = skill.ClassifySchema(q.Metrics)
	return q
}
