// Package language resolves file extensions to language tags and carries the
// per-language lexical hints (comment markers, function-start patterns) the
// metric extractors need. The table lives in an embedded YAML file so adding a
// language never requires touching extractor code.
package language

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed languages.yaml
var languagesYAML []byte

// Unresolved is the tag returned for extensions outside the table. Unresolved
// files are excluded by discovery and never scored.
const Unresolved = "unresolved"

// DefaultLineComment is assumed for tags outside the table.
const DefaultLineComment = "//"

// Definition describes one supported language.
type Definition struct {
	Tag             string   `yaml:"tag"`
	Extensions      []string `yaml:"extensions"`
	LineComment     string   `yaml:"lineComment"`
	BlockOpen       string   `yaml:"blockOpen"`
	BlockClose      string   `yaml:"blockClose"`
	FunctionPattern string   `yaml:"functionPattern"`

	funcRe *regexp.Regexp
}

// FunctionRegexp returns the compiled function-start pattern, or nil when the
// language defines none.
func (d *Definition) FunctionRegexp() *regexp.Regexp {
	return d.funcRe
}

// Registry is an immutable lookup table built once from the embedded YAML.
type Registry struct {
	defs  []Definition
	byExt map[string]*Definition
	byTag map[string]*Definition
}

type languageFile struct {
	Languages []Definition `yaml:"languages"`
}

// Load parses the embedded language table and compiles its patterns.
func Load() (*Registry, error) {
	var lf languageFile
	if err := yaml.Unmarshal(languagesYAML, &lf); err != nil {
		return nil, fmt.Errorf("error parsing language table: %w", err)
	}

	r := &Registry{
		defs:  lf.Languages,
		byExt: make(map[string]*Definition),
		byTag: make(map[string]*Definition),
	}
	for i := range r.defs {
		def := &r.defs[i]
		if def.FunctionPattern != "" {
			re, err := regexp.Compile(def.FunctionPattern)
			if err != nil {
				return nil, fmt.Errorf("invalid function pattern for %s: %w", def.Tag, err)
			}
			def.funcRe = re
		}
		r.byTag[def.Tag] = def
		for _, ext := range def.Extensions {
			ext = strings.ToLower(ext)
			// First entry wins; .h stays with c.
			if _, taken := r.byExt[ext]; !taken {
				r.byExt[ext] = def
			}
		}
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide registry built from the embedded table.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load()
	})
	return defaultRegistry, defaultErr
}

// Resolve maps a file name to its language tag, case-insensitively on the
// extension. Unknown extensions resolve to Unresolved.
func (r *Registry) Resolve(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if def, ok := r.byExt[ext]; ok {
		return def.Tag
	}
	return Unresolved
}

// Lookup returns the definition for a tag.
func (r *Registry) Lookup(tag string) (*Definition, bool) {
	def, ok := r.byTag[tag]
	return def, ok
}

// Markers returns the comment markers for a tag. Unknown tags degrade to the
// default line comment with no block markers.
func (r *Registry) Markers(tag string) (line, blockOpen, blockClose string) {
	if def, ok := r.byTag[tag]; ok {
		return def.LineComment, def.BlockOpen, def.BlockClose
	}
	return DefaultLineComment, "", ""
}

// Tags returns the supported tags in table order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.defs))
	for i := range r.defs {
		tags = append(tags, r.defs[i].Tag)
	}
	return tags
}

// Definitions returns the table entries in order.
func (r *Registry) Definitions() []Definition {
	return r.defs
}

// IsSupported reports whether tag is in the table.
func (r *Registry) IsSupported(tag string) bool {
	_, ok := r.byTag[tag]
	return ok
}
