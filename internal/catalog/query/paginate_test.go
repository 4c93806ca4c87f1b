package query

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/internal/skill"
)

func numberedCatalog(n int) catalog.Catalog {
	cat := make(catalog.Catalog, n)
	for i := range cat {
		cat[i] = skill.Skill{Name: fmt.Sprintf("skill-%02d", i)}
	}
	return cat
}

func TestPaginate(t *testing.T) {
	cat := testCatalog()

	page, err := Paginate(cat, 1, 2)
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if !reflect.DeepEqual(names(page.Items), []string{"alpha", "beta"}) {
		t.Errorf("page 1 = %v", names(page.Items))
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}

	page, err = Paginate(cat, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names(page.Items), []string{"gamma"}) {
		t.Errorf("page 2 = %v", names(page.Items))
	}
}

func TestPaginate_BeyondEnd(t *testing.T) {
	page, err := Paginate(testCatalog(), 9, 2)
	if err != nil {
		t.Fatalf("pages beyond the end are not an error, got %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("Items = %v, want empty", names(page.Items))
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
}

func TestPaginate_EmptyCatalog(t *testing.T) {
	page, err := Paginate(catalog.Catalog{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Items) != 0 || page.TotalPages != 0 {
		t.Errorf("page = %+v", page)
	}
}

func TestPaginate_InvalidArguments(t *testing.T) {
	if _, err := Paginate(testCatalog(), 1, 0); !errors.Is(err, errors.ErrInvalidPageSize) {
		t.Errorf("perPage=0 error = %v, want ErrInvalidPageSize", err)
	}
	if _, err := Paginate(testCatalog(), 1, -3); !errors.Is(err, errors.ErrInvalidPageSize) {
		t.Errorf("perPage=-3 error = %v, want ErrInvalidPageSize", err)
	}
	if _, err := Paginate(testCatalog(), 0, 5); !errors.Is(err, errors.ErrInvalidPage) {
		t.Errorf("page=0 error = %v, want ErrInvalidPage", err)
	}
}

func TestPaginate_ReconstructionLaw(t *testing.T) {
	// Concatenating every page reconstructs the catalog exactly, with
	// the last page possibly short but never empty.
	for _, size := range []int{1, 2, 3, 5, 7, 10} {
		cat := numberedCatalog(10)

		first, err := Paginate(cat, 1, size)
		if err != nil {
			t.Fatal(err)
		}

		var rebuilt catalog.Catalog
		for p := 1; p <= first.TotalPages; p++ {
			page, err := Paginate(cat, p, size)
			if err != nil {
				t.Fatal(err)
			}
			if len(page.Items) == 0 {
				t.Fatalf("perPage=%d page=%d: empty page inside range", size, p)
			}
			rebuilt = append(rebuilt, page.Items...)
		}

		if !reflect.DeepEqual(rebuilt, cat) {
			t.Errorf("perPage=%d: reconstruction mismatch", size)
		}
	}
}
