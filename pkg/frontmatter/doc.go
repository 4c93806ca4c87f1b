// Package frontmatter provides generic parsing of metadata headers from
// Markdown files used by skillery for skill records.
//
// Headers are delimited by lines containing only "---" (YAML) or "+++"
// (TOML) at the start and end. The content between delimiters is parsed
// and unmarshaled into the type parameter T. The remaining content after
// the closing delimiter is returned as the body.
//
// # Basic Usage
//
//	type SkillMeta struct {
//		Name        string   `yaml:"name"`
//		Description string   `yaml:"description"`
//		Tags        []string `yaml:"tags"`
//	}
//
//	var meta SkillMeta
//	body, err := frontmatter.MustParse(f, &meta)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Skill: %s\nInstructions:\n%s", meta.Name, body)
//
// # Error Handling
//
// The package defines sentinel errors for common failure conditions:
//
//   - [ErrMissingFrontmatter]: file doesn't start with a delimiter
//   - [ErrUnclosedFrontmatter]: opening delimiter has no closing match
//
// These can be checked using [errors.Is].
//
// # Supported Formats
//
// YAML headers use "---" delimiters, TOML headers use "+++" delimiters.
// Both Unix (LF) and Windows (CRLF) line endings are handled correctly.
package frontmatter
