// Package frontmatter implements the metadata codec: it locates the
// "---" fenced header of a document, decodes it into domain.Properties
// with source positions for every finding, and writes properties back
// while leaving the body untouched.
//
// The header body is YAML, read through gopkg.in/yaml.v3 node trees so
// that every value keeps its line and column.
package frontmatter
