package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dotcommander/codemess/internal/language"
	"github.com/dotcommander/codemess/internal/types"
)

func writeFile(t *testing.T, dir, name string, contents []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func registry(t *testing.T) *language.Registry {
	t.Helper()
	reg, err := language.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return reg
}

func paths(units []types.SourceUnit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Path
	}
	return out
}

func TestDiscoverFiltersAndOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.go", []byte("package b\n"))
	writeFile(t, dir, "a.py", []byte("x = 1\n"))
	writeFile(t, dir, "notes.txt", []byte("plain text\n"))        // unknown extension
	writeFile(t, dir, "blob.go", []byte{'p', 0, 'q'})             // binary
	writeFile(t, dir, ".hidden/secret.go", []byte("package s\n")) // dot dir
	writeFile(t, dir, "vendor/dep.go", []byte("package dep\n"))   // excluded glob
	writeFile(t, dir, "sub/c.go", []byte("package c\n"))

	d := NewDiscoverer(dir, registry(t), Options{Exclude: []string{"vendor/**"}})
	units, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	// WalkDir visits entries in lexical order; that order is the tie-break
	// order downstream, so pin it exactly.
	want := []string{"a.py", "b.go", "sub/c.go"}
	if got := paths(units); !reflect.DeepEqual(got, want) {
		t.Errorf("Discover() paths = %v, want %v", got, want)
	}

	if units[0].Language != "python" || units[1].Language != "go" {
		t.Errorf("resolved languages = %s, %s; want python, go", units[0].Language, units[1].Language)
	}
}

func TestDiscoverDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.go", []byte("package x\n"))
	writeFile(t, dir, "y/z.go", []byte("package z\n"))
	writeFile(t, dir, "a.go", []byte("package a\n"))

	d := NewDiscoverer(dir, registry(t), Options{})
	first, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := d.Discover()
		if err != nil {
			t.Fatalf("Discover() error: %v", err)
		}
		if !reflect.DeepEqual(paths(again), paths(first)) {
			t.Fatalf("run %d order %v differs from %v", i, paths(again), paths(first))
		}
	}
}

func TestDiscoverSingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.rs", []byte("fn main() {}\n"))

	d := NewDiscoverer(filepath.Join(dir, "one.rs"), registry(t), Options{})
	units, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(units) != 1 {
		t.Fatalf("Discover() = %d units, want 1", len(units))
	}
	if units[0].Path != "one.rs" || units[0].Language != "rust" {
		t.Errorf("unit = %+v, want one.rs/rust", units[0])
	}
}

func TestDiscoverSingleFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README", []byte("hello\n"))

	d := NewDiscoverer(filepath.Join(dir, "README"), registry(t), Options{})
	units, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(units) != 0 {
		t.Errorf("Discover() = %v, want no units for an unresolvable file", units)
	}
}

func TestDiscoverForceLanguage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "script", []byte("def f():\n    pass\n"))

	d := NewDiscoverer(dir, registry(t), Options{ForceLanguage: "python"})
	units, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(units) != 1 || units[0].Language != "python" {
		t.Errorf("Discover() = %+v, want one python unit", units)
	}
}

func TestDiscoverMaxFileBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.go", []byte("package s\n"))
	writeFile(t, dir, "big.go", make([]byte, 64))

	d := NewDiscoverer(dir, registry(t), Options{MaxFileBytes: 32})
	units, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if got := paths(units); !reflect.DeepEqual(got, []string{"small.go"}) {
		t.Errorf("Discover() paths = %v, want only small.go", got)
	}
}

func TestDiscoverSkipsIndexFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.js", []byte("let x = 1\n"))
	writeFile(t, dir, "app.min.js", []byte("let x=1\n"))
	writeFile(t, dir, "package-lock.json", []byte("{}\n"))

	d := NewDiscoverer(dir, registry(t), Options{SkipIndexFiles: true})
	units, err := d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if got := paths(units); !reflect.DeepEqual(got, []string{"app.js"}) {
		t.Errorf("Discover() paths = %v, want only app.js", got)
	}

	// With skipping off, the minified file comes back.
	d = NewDiscoverer(dir, registry(t), Options{SkipIndexFiles: false})
	units, err = d.Discover()
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if got := paths(units); !reflect.DeepEqual(got, []string{"app.js", "app.min.js"}) {
		t.Errorf("Discover() paths = %v, want app.js and app.min.js", got)
	}
}

func TestIsBinary(t *testing.T) {
	if !isBinary([]byte{'a', 0, 'b'}) {
		t.Error("NUL within probe not detected")
	}
	if isBinary([]byte("plain text")) {
		t.Error("plain text flagged as binary")
	}
	// NUL past the 512-byte probe window is not inspected.
	late := append([]byte(strings.Repeat("x", 599)), 0)
	if isBinary(late) {
		t.Error("NUL beyond probe window should not flag the file")
	}
}
