package paths

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCatalogPath(t *testing.T) {
	got := CatalogPath("/tmp/out")
	if got != filepath.Join("/tmp/out", CatalogFile) {
		t.Errorf("CatalogPath = %q", got)
	}

	// Empty dir falls back to the XDG data home.
	def := CatalogPath("")
	if !strings.Contains(def, AppName) {
		t.Errorf("default CatalogPath %q should live under the %s data dir", def, AppName)
	}
}

func TestIndexPath(t *testing.T) {
	got := IndexPath("/tmp/out")
	if got != filepath.Join("/tmp/out", IndexFile) {
		t.Errorf("IndexPath = %q", got)
	}
}
