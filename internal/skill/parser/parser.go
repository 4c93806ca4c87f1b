// Package parser provides SKILL.md record parsing. It extracts the raw
// metadata field map and the markdown body from a skill record without
// imposing any schema; field typing and defaults belong to the
// normalizer.
package parser

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/thoreinstein/skillery/internal/errors"
	"github.com/thoreinstein/skillery/pkg/fileutil"
	"github.com/thoreinstein/skillery/pkg/frontmatter"
)

// Record holds the raw output of parsing one skill record: the untyped
// header fields and the opaque body text.
type Record struct {
	// Fields is the raw, untyped metadata map exactly as the header
	// declared it.
	Fields map[string]any

	// Body is the record's free-form text, trimmed of surrounding
	// whitespace. Any content is valid, including none.
	Body string

	// Path is the source location, kept for error context and for the
	// catalog's provenance field.
	Path string
}

// Parser handles skill record parsing operations.
type Parser struct{}

// New creates a new Parser instance.
func New() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a skill record from the given path.
// Records larger than fileutil.MaxFileSize are rejected.
func (p *Parser) ParseFile(path string) (*Record, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return p.ParseBytes(data, path)
}

// Parse reads and parses a skill record from the given reader.
// The path parameter is used for error context only.
func (p *Parser) Parse(r io.Reader, path string) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return p.ParseBytes(data, path)
}

// ParseBytes parses skill record content from bytes. A malformed or
// missing header yields a ParseError marked with ErrRecordMalformed so
// the build can skip the record and continue.
func (p *Parser) ParseBytes(data []byte, path string) (*Record, error) {
	fields := map[string]any{}
	body, err := frontmatter.MustParse(bytes.NewReader(data), &fields)
	if err != nil {
		return nil, &ParseError{Path: path, Err: errors.Mark(err, errors.ErrRecordMalformed)}
	}

	return &Record{
		Fields: fields,
		Body:   strings.TrimSpace(string(body)),
		Path:   path,
	}, nil
}

// ParseHeader parses only the metadata fields, stopping at the closing
// delimiter. This is more efficient for listings that never need the body.
func (p *Parser) ParseHeader(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	fields := map[string]any{}
	if err := frontmatter.ParseHeader(f, &fields); err != nil {
		return nil, &ParseError{Path: path, Err: errors.Mark(err, errors.ErrRecordMalformed)}
	}

	return fields, nil
}
