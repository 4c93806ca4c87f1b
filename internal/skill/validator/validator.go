// Package validator lints normalized Skills. Findings are warnings: the
// normalizer already guarantees a well-typed Skill, so nothing here
// aborts a build. The builder surfaces findings in its report.
package validator

import (
	"regexp"
	"strings"

	"github.com/thoreinstein/skillery/internal/skill"
)

// maxNameLength is the maximum allowed length for skill names.
const maxNameLength = 64

// nameRegex validates skill names: lowercase alphanumeric, single hyphens
// allowed between segments, no start/end hyphen, no consecutive hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Option configures a Validator.
type Option func(*Validator)

// Validator lints Skills against the catalog's conventions and the
// injected category vocabulary.
type Validator struct {
	categories skill.Categories
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithCategories sets the curated category set used for the referential
// integrity check. Without it, category references are not checked.
func WithCategories(cats skill.Categories) Option {
	return func(v *Validator) {
		v.categories = cats
	}
}

// Validate checks a Skill and returns its findings, or nil if clean.
func (v *Validator) Validate(s *skill.Skill) []error {
	var errs []error

	errs = append(errs, v.validateName(s.Name)...)
	errs = append(errs, v.validateDescription(s.Description)...)
	errs = append(errs, v.validateCategory(s.Category)...)
	errs = append(errs, v.validateQuality(s.QualityScore)...)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateName checks the id token conventions.
func (v *Validator) validateName(name string) []error {
	var errs []error

	if name == "" {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: "name is required",
		})
		return errs
	}

	if len(name) > maxNameLength {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: "name exceeds maximum length of 64 characters",
			Value:   name,
		})
	}

	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
			msg = "name cannot start or end with a hyphen"
		} else if strings.Contains(name, "--") {
			msg = "name cannot contain consecutive hyphens"
		} else if strings.ToLower(name) != name {
			msg = "name must be lowercase"
		}
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: msg,
			Value:   name,
		})
	}

	return errs
}

// validateDescription checks the description field.
func (v *Validator) validateDescription(description string) []error {
	if strings.TrimSpace(description) == "" {
		return []error{&ValidationError{
			Field:   "description",
			Message: "description is required",
		}}
	}
	return nil
}

// validateCategory checks the category reference against the curated set.
// A dangling reference is a finding, not a failure: display degrades to
// the raw id.
func (v *Validator) validateCategory(category string) []error {
	if len(v.categories) == 0 {
		return nil
	}
	if v.categories.Contains(category) {
		return nil
	}
	return []error{&ValidationError{
		Field:   "category",
		Message: "category is not in the curated set",
		Value:   category,
	}}
}

// validateQuality checks the overall-equals-mean soft invariant of the
// six-dimension quality schema.
func (v *Validator) validateQuality(q *skill.QualityScore) []error {
	if q == nil || q.ConsistentOverall() {
		return nil
	}
	return []error{&ValidationError{
		Field:   "qualityScore",
		Message: "overall does not match the mean of the six-dimension metrics",
		Context: map[string]string{
			"schema": q.Schema,
		},
	}}
}
