package catalog

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/logging"
	"github.com/thoreinstein/skillery/internal/paths"
	"github.com/thoreinstein/skillery/internal/skill"
	"github.com/thoreinstein/skillery/internal/skill/normalize"
	"github.com/thoreinstein/skillery/internal/skill/parser"
	"github.com/thoreinstein/skillery/internal/skill/validator"
)

// Builder runs the one-shot batch that turns a directory of skill
// records into a Catalog and its artifacts.
type Builder struct {
	parser     *parser.Parser
	normalizer *normalize.Normalizer
	validator  *validator.Validator
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the builder's logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithClock overrides the time source used for the index's lastUpdated
// stamp. Tests use a fixed clock to get byte-identical artifacts.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a Builder against the injected category and
// data-level vocabularies.
func NewBuilder(cats skill.Categories, levels skill.DataLevels, opts ...Option) *Builder {
	b := &Builder{
		parser:     parser.New(),
		normalizer: normalize.New(levels),
		validator:  validator.New(validator.WithCategories(cats)),
		logger:     logging.NewDiscard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// discovery is one record slot, keyed by its deterministic position in
// the directory walk.
type discovery struct {
	index      int
	path       string
	fallbackID string
}

// outcome is the per-record result of the parallel parse/normalize phase.
type outcome struct {
	skill skill.Skill
	err   error
}

// Build discovers, parses, and normalizes every record under sourceDir
// and assembles the ordered catalog. Per-record parse failures are
// skipped and tallied; an unreadable source directory or a duplicate
// skill id aborts the build.
func (b *Builder) Build(sourceDir string) (Catalog, *Report, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, nil, errors.Wrapf(errors.Mark(err, errors.ErrSourceUnreadable),
			"reading source directory %s", sourceDir)
	}

	// os.ReadDir returns entries sorted by name, which fixes the
	// discovery order and makes builds reproducible.
	var found []discovery
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		recordPath := filepath.Join(sourceDir, entry.Name(), paths.SkillFileName)
		if _, err := os.Stat(recordPath); err != nil {
			if os.IsNotExist(err) {
				b.logger.Debug("directory has no skill record", "dir", entry.Name())
				continue
			}
			b.logger.Warn("cannot stat skill record", "path", recordPath, "error", err)
			continue
		}
		found = append(found, discovery{
			index:      len(found),
			path:       recordPath,
			fallbackID: entry.Name(),
		})
	}

	outcomes := b.runWorkers(found)

	report := &Report{Discovered: len(found)}
	seen := make(map[string]string, len(found))
	cat := make(Catalog, 0, len(found))

	// Reassemble in discovery order so completion order of the workers
	// never influences the output.
	for i, d := range found {
		res := outcomes[i]
		if res.err != nil {
			b.logger.Warn("skipping malformed record", "path", d.path, "error", res.err)
			report.Skipped++
			report.Failures = append(report.Failures, Failure{Path: d.path, Err: res.err})
			continue
		}

		s := res.skill
		if prev, ok := seen[s.Name]; ok {
			return nil, report, errors.Wrapf(errors.ErrDuplicateSkill,
				"%q declared by both %s and %s", s.Name, prev, d.path)
		}
		seen[s.Name] = d.path

		for _, finding := range b.validator.Validate(&s) {
			b.logger.Warn("skill lint finding", "skill", s.Name, "finding", finding)
			report.Warnings = append(report.Warnings, Warning{Name: s.Name, Message: finding.Error()})
		}

		cat = append(cat, s)
		report.Built++
	}

	// Featured first, then descending install count; the stable sort
	// keeps discovery order for ties.
	slices.SortStableFunc(cat, CompareRecommended)

	return cat, report, nil
}

// runWorkers parses and normalizes records on a bounded pool. Each
// worker writes only its own outcome slots, so no synchronization is
// needed beyond the final wait.
func (b *Builder) runWorkers(found []discovery) []outcome {
	outcomes := make([]outcome, len(found))
	if len(found) == 0 {
		return outcomes
	}

	workers := runtime.GOMAXPROCS(0)
	if len(found) < workers {
		workers = len(found)
	}

	work := make(chan discovery, len(found))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range work {
				rec, err := b.parser.ParseFile(d.path)
				if err != nil {
					outcomes[d.index] = outcome{err: err}
					continue
				}
				outcomes[d.index] = outcome{skill: b.normalizer.Normalize(rec, d.fallbackID)}
			}
		}()
	}

	for _, d := range found {
		work <- d
	}
	close(work)
	wg.Wait()

	return outcomes
}
