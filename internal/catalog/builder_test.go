package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/logging"
	"github.com/thoreinstein/skillery/internal/paths"
	"github.com/thoreinstein/skillery/internal/skill"
)

var testCategories = skill.Categories{
	{ID: "coding", Name: "Coding", NameEn: "Coding"},
	{ID: "other", Name: "Other", NameEn: "Other"},
}

func writeRecord(t *testing.T, sourceDir, dir, content string) {
	t.Helper()
	skillDir := filepath.Join(sourceDir, dir)
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, paths.SkillFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()
	opts = append([]Option{WithLogger(logging.ForTest(t))}, opts...)
	return NewBuilder(testCategories, skill.DefaultDataLevels, opts...)
}

const recordA = `---
name: alpha
description: Featured but modest install count
category: coding
featured: true
installCount: 5
---
Alpha instructions.
`

const recordB = `---
name: beta
description: Most popular
category: coding
installCount: 100
---
Beta instructions.
`

const recordC = `---
name: gamma
description: Middling popularity
category: coding
installCount: 10
---
Gamma instructions.
`

func threeRecordSource(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	// Directory names chosen so discovery order differs from the
	// built order.
	writeRecord(t, src, "a-alpha", recordA)
	writeRecord(t, src, "b-beta", recordB)
	writeRecord(t, src, "c-gamma", recordC)
	return src
}

func TestBuild_OrderingInvariant(t *testing.T) {
	cat, report, err := testBuilder(t).Build(threeRecordSource(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if report.Built != 3 || report.Skipped != 0 {
		t.Fatalf("report = %+v", report)
	}

	var names []string
	for _, s := range cat {
		names = append(names, s.Name)
	}
	// Featured-first, then descending install count.
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestBuild_TiesKeepDiscoveryOrder(t *testing.T) {
	src := t.TempDir()
	tie := `---
description: Tied on every sort key
category: other
installCount: 7
---
`
	writeRecord(t, src, "zz-late", tie)
	writeRecord(t, src, "aa-early", tie)

	cat, _, err := testBuilder(t).Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(cat) != 2 || cat[0].Name != "aa-early" || cat[1].Name != "zz-late" {
		t.Errorf("tie order wrong: %v, %v", cat[0].Name, cat[1].Name)
	}
}

func TestBuild_MalformedRecordSkipped(t *testing.T) {
	src := threeRecordSource(t)
	writeRecord(t, src, "broken", "no header at all\n")

	cat, report, err := testBuilder(t).Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(cat) != 3 {
		t.Errorf("catalog size = %d, want 3", len(cat))
	}
	if report.Discovered != 4 || report.Built != 3 || report.Skipped != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("Failures = %v", report.Failures)
	}
	if !errors.Is(report.Failures[0].Err, errors.ErrRecordMalformed) {
		t.Errorf("failure not marked malformed: %v", report.Failures[0].Err)
	}
}

func TestBuild_DuplicateIDFails(t *testing.T) {
	src := t.TempDir()
	dup := `---
name: same-skill
description: First declaration
---
`
	writeRecord(t, src, "first", dup)
	writeRecord(t, src, "second", dup)

	_, _, err := testBuilder(t).Build(src)
	if !errors.Is(err, errors.ErrDuplicateSkill) {
		t.Fatalf("Build() error = %v, want ErrDuplicateSkill", err)
	}
}

func TestBuild_SourceUnreadable(t *testing.T) {
	_, _, err := testBuilder(t).Build(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, errors.ErrSourceUnreadable) {
		t.Fatalf("Build() error = %v, want ErrSourceUnreadable", err)
	}
}

func TestBuild_FallbackIdentity(t *testing.T) {
	src := t.TempDir()
	writeRecord(t, src, "dir-named-skill", "---\ndescription: nameless\n---\nBody.\n")

	cat, _, err := testBuilder(t).Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(cat) != 1 || cat[0].Name != "dir-named-skill" {
		t.Fatalf("catalog = %+v", cat)
	}
	if cat[0].Name == "" {
		t.Error("every built skill must have a non-empty id")
	}
}

func TestBuild_UnknownCategoryWarns(t *testing.T) {
	src := t.TempDir()
	writeRecord(t, src, "odd", "---\nname: odd\ndescription: odd category\ncategory: quantum\n---\n")

	cat, report, err := testBuilder(t).Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(cat) != 1 {
		t.Fatalf("unknown category must not drop the record, catalog = %v", cat)
	}
	if len(report.Warnings) == 0 {
		t.Error("expected a category warning in the report")
	}
}

func TestWriteArtifacts_Idempotent(t *testing.T) {
	src := threeRecordSource(t)
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	b := testBuilder(t, WithClock(func() time.Time { return fixed }))

	read := func(dir string) (string, string) {
		t.Helper()
		cat, err := os.ReadFile(paths.CatalogPath(dir))
		if err != nil {
			t.Fatal(err)
		}
		idx, err := os.ReadFile(paths.IndexPath(dir))
		if err != nil {
			t.Fatal(err)
		}
		return string(cat), string(idx)
	}

	out1 := t.TempDir()
	cat1, _, err := b.Build(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.WriteArtifacts(out1, cat1); err != nil {
		t.Fatal(err)
	}

	out2 := t.TempDir()
	cat2, _, err := b.Build(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.WriteArtifacts(out2, cat2); err != nil {
		t.Fatal(err)
	}

	gotCat1, gotIdx1 := read(out1)
	gotCat2, gotIdx2 := read(out2)
	if gotCat1 != gotCat2 {
		t.Error("catalog artifacts differ across identical builds")
	}
	if gotIdx1 != gotIdx2 {
		t.Error("index artifacts differ across identical builds")
	}
}

func TestLoadIndex_RoundTrip(t *testing.T) {
	src := threeRecordSource(t)
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	b := testBuilder(t, WithClock(func() time.Time { return fixed }))

	cat, _, err := b.Build(src)
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	if err := b.WriteArtifacts(out, cat); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadIndex(paths.IndexPath(out))
	if err != nil {
		t.Fatalf("LoadIndex() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, b.BuildIndex(cat)) {
		t.Errorf("index round trip mismatch:\nwritten: %+v\nloaded:  %+v", b.BuildIndex(cat), loaded)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	src := threeRecordSource(t)
	b := testBuilder(t)

	built, _, err := b.Build(src)
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	if err := b.WriteArtifacts(out, built); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(paths.CatalogPath(out))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, built) {
		t.Errorf("round trip mismatch:\nbuilt:  %+v\nloaded: %+v", built, loaded)
	}
}

func TestBuildIndex_SlimProjection(t *testing.T) {
	src := t.TempDir()
	writeRecord(t, src, "tagged", `---
name: tagged
description: Overloaded with tags
category: other
tags: [a, b, c, d, e, f, g]
---
Secret body content.
`)

	b := testBuilder(t)
	cat, _, err := b.Build(src)
	if err != nil {
		t.Fatal(err)
	}

	idx := b.BuildIndex(cat)
	if idx.TotalSkills != 1 || len(idx.Skills) != 1 {
		t.Fatalf("index = %+v", idx)
	}
	entry := idx.Skills[0]
	if len(entry.Tags) != 5 {
		t.Errorf("Tags = %v, want truncation to 5", entry.Tags)
	}
	if idx.Version != IndexVersion {
		t.Errorf("Version = %q", idx.Version)
	}
}

func TestCatalog_Find(t *testing.T) {
	cat := Catalog{{Name: "alpha"}, {Name: "beta"}}

	s, err := cat.Find("beta")
	if err != nil || s.Name != "beta" {
		t.Errorf("Find(beta) = %v, %v", s, err)
	}

	_, err = cat.Find("absent")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Find(absent) error = %v, want ErrNotFound", err)
	}
}
