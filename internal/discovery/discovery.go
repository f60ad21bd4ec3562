// Package discovery walks a root and turns scoreable files into SourceUnits:
// filtered by exclude globs, binary detection, size cap, and index-file
// skipping, with the language already resolved. The scoring core never
// touches the filesystem; everything it consumes comes from here.
package discovery

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/codemess/internal/language"
	"github.com/dotcommander/codemess/internal/types"
)

// indexFilePatterns name generated or lock files that would only skew the
// metrics. Matched by basename.
var indexFilePatterns = []string{
	"go.sum",
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Gemfile.lock",
	"Podfile.lock",
	"Cargo.lock",
	"*.min.js",
	"*.min.css",
}

// Options configures a Discoverer.
type Options struct {
	Exclude        []string // doublestar globs, matched against slash-relative paths
	ForceLanguage  string   // non-empty forces every file to this tag
	MaxFileBytes   int64    // files larger than this are skipped; 0 means no cap
	SkipIndexFiles bool
}

// Discoverer enumerates scoreable files under a root.
type Discoverer struct {
	root     string
	registry *language.Registry
	opts     Options
}

// NewDiscoverer creates a Discoverer. The registry resolves language tags.
func NewDiscoverer(root string, registry *language.Registry, opts Options) *Discoverer {
	return &Discoverer{root: root, registry: registry, opts: opts}
}

// Discover returns SourceUnits in deterministic walk order. That order is the
// discovery order used for report tie-breaks, so it must not vary across
// runs. A root that is a single file yields at most one unit.
func (d *Discoverer) Discover() ([]types.SourceUnit, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", d.root, err)
	}

	if !info.IsDir() {
		unit, ok, err := d.load(d.root, filepath.Base(d.root), info.Size())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []types.SourceUnit{unit}, nil
	}

	var units []types.SourceUnit
	err = filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, relErr := filepath.Rel(d.root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel == "." {
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") || d.excluded(rel+"/") || d.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.excluded(rel) {
			return nil
		}

		fi, infoErr := entry.Info()
		if infoErr != nil {
			return nil // vanished mid-walk, skip
		}

		unit, ok, loadErr := d.load(path, rel, fi.Size())
		if loadErr != nil {
			return loadErr
		}
		if ok {
			units = append(units, unit)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", d.root, err)
	}

	return units, nil
}

// load reads one candidate file and applies the per-file filters. ok is false
// when the file should be silently skipped.
func (d *Discoverer) load(path, rel string, size int64) (types.SourceUnit, bool, error) {
	if d.opts.MaxFileBytes > 0 && size > d.opts.MaxFileBytes {
		return types.SourceUnit{}, false, nil
	}

	if d.opts.SkipIndexFiles && isIndexFile(filepath.Base(path)) {
		return types.SourceUnit{}, false, nil
	}

	tag := d.opts.ForceLanguage
	if tag == "" {
		tag = d.registry.Resolve(path)
	}
	if tag == language.Unresolved {
		return types.SourceUnit{}, false, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return types.SourceUnit{}, false, nil // unreadable, skip
	}

	if isBinary(contents) {
		return types.SourceUnit{}, false, nil
	}

	return types.SourceUnit{Path: rel, Language: tag, Text: string(contents)}, true, nil
}

// excluded checks rel against the exclude globs.
func (d *Discoverer) excluded(rel string) bool {
	for _, pattern := range d.opts.Exclude {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}
	return false
}

// isBinary checks the first 512 bytes for a NUL byte.
func isBinary(contents []byte) bool {
	probe := contents
	if len(probe) > 512 {
		probe = probe[:512]
	}
	return bytes.Contains(probe, []byte{0})
}

func isIndexFile(base string) bool {
	for _, pattern := range indexFilePatterns {
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
