// Package frontmatter provides utilities for parsing and formatting
// metadata headers in skill record files.
package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrMissingFrontmatter is returned by MustParse when no frontmatter is found.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ErrUnclosedFrontmatter is returned when an opening delimiter has no
// matching closing delimiter.
var ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")

// delimiter pairs recognized at the start of a record. YAML uses "---",
// TOML uses "+++" (Hugo convention).
var delimiters = []struct {
	marker    string
	unmarshal func([]byte, any) error
}{
	{"---", yaml.Unmarshal},
	{"+++", toml.Unmarshal},
}

// Parse extracts the metadata header and body content from a reader.
// If no header is present, returns empty struct and full content as body.
// This is useful for files where the header is optional.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but returns an error if no header is found.
// This is useful for files where the header is required (skill records).
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	for _, d := range delimiters {
		if !hasOpeningDelimiter(content, d.marker) {
			continue
		}
		header, body, found := splitHeader(content, d.marker)
		if !found {
			if required {
				return nil, ErrUnclosedFrontmatter
			}
			return content, nil
		}
		if err := d.unmarshal(header, matter); err != nil {
			return nil, err
		}
		return body, nil
	}

	if required {
		return nil, ErrMissingFrontmatter
	}
	return content, nil
}

// hasOpeningDelimiter reports whether content starts with the marker on a
// line of its own. Both LF and CRLF line endings are accepted.
func hasOpeningDelimiter(content []byte, marker string) bool {
	return bytes.HasPrefix(content, []byte(marker+"\n")) ||
		bytes.HasPrefix(content, []byte(marker+"\r\n"))
}

// splitHeader separates the header block from the body. The opening marker
// has already been matched; we search for the closing marker on its own line.
func splitHeader(content []byte, marker string) (header, body []byte, found bool) {
	startOffset := len(marker)
	if len(content) > startOffset && content[startOffset] == '\r' {
		startOffset++
	}
	if len(content) > startOffset && content[startOffset] == '\n' {
		startOffset++
	}

	rest := content[startOffset:]
	parts := bytes.SplitN(rest, []byte("\n"+marker), 2)
	if len(parts) < 2 {
		parts = bytes.SplitN(rest, []byte("\r\n"+marker), 2)
	}
	if len(parts) < 2 {
		return nil, nil, false
	}

	header = parts[0]
	body = parts[1]

	// Trim the newline left over from the split.
	if len(body) > 0 && body[0] == '\r' {
		body = body[1:]
	}
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}

	return header, body, true
}

// ParseHeader parses only the metadata header from the reader.
// It stops reading after the closing delimiter, so the body is never
// loaded into memory. Returns nil if no header is found (silent success,
// matter remains empty). Only YAML headers are supported in this fast path.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return scanner.Err()
	}
	line := strings.TrimSpace(scanner.Text())
	if line != "---" {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return yaml.Unmarshal(buf.Bytes(), matter)
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}

	return scanner.Err()
}

// Format formats content with a YAML metadata header.
// The matter struct is serialized to YAML and wrapped in "---" delimiters,
// followed by the body content.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
