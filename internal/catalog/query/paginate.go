package query

import (
	"github.com/thoreinstein/skillery/internal/catalog"
	"github.com/thoreinstein/skillery/internal/errors"
)

// Page is one slice of a paginated catalog.
type Page struct {
	// Items holds the entries of this page, in catalog order.
	Items catalog.Catalog

	// TotalPages is ceil(len(catalog) / perPage).
	TotalPages int
}

// Paginate slices the catalog into 1-indexed pages of perPage entries.
// Pages past the end yield empty items, not an error; the last page may
// be shorter than perPage. perPage must be positive and page at least 1.
func Paginate(cat catalog.Catalog, page, perPage int) (*Page, error) {
	if perPage <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidPageSize, "perPage %d", perPage)
	}
	if page < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidPage, "page %d", page)
	}

	totalPages := (len(cat) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(cat) {
		return &Page{Items: catalog.Catalog{}, TotalPages: totalPages}, nil
	}

	end := start + perPage
	if end > len(cat) {
		end = len(cat)
	}

	return &Page{Items: cat[start:end], TotalPages: totalPages}, nil
}
