package catalog

import "log/slog"

// Report is the build's per-record tally. It is always produced, even on
// a fully successful run, so a broken record can never silently shrink
// the catalog.
type Report struct {
	// Discovered counts records found in the source directory.
	Discovered int

	// Built counts records that made it into the catalog.
	Built int

	// Skipped counts records dropped for malformed headers.
	Skipped int

	// Failures carries one entry per skipped record.
	Failures []Failure

	// Warnings carries lint findings for records that were kept.
	Warnings []Warning
}

// Failure records one skipped record and why.
type Failure struct {
	Path string
	Err  error
}

// Warning records one lint finding on a kept skill.
type Warning struct {
	Name    string
	Message string
}

// Clean reports whether the build had no skips and no warnings.
func (r *Report) Clean() bool {
	return r.Skipped == 0 && len(r.Warnings) == 0
}

// Log writes the tally through the given logger: one summary line, plus
// one line per failure.
func (r *Report) Log(logger *slog.Logger) {
	logger.Info("build report",
		"discovered", r.Discovered,
		"built", r.Built,
		"skipped", r.Skipped,
		"warnings", len(r.Warnings))

	for _, f := range r.Failures {
		logger.Warn("record skipped", "path", f.Path, "error", f.Err)
	}
}
