// Package level reads calculator puzzle levels from YAML and turns them
// into tree searches.
//
// A level file looks like:
//
//	name: meta-buttons
//	start: 5
//	target: 41
//	moves: 4
//	buttons: ["x3", "+4", "+8", "[+]2"]
//	warp: {enter: 2, exit: 0}     # optional
//	store_consumes_move: false   # optional
//	solution: ["[+]2", "multiply by 5", "sum with 6", "sum with 10"]  # optional
//
// Buttons use the specs understood by ops.Parse. Solution, when present,
// is the expected answer and is only used by Check.
package level

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/calcpath/ops"
	"github.com/katalvlaran/calcpath/tree"
)

var (
	// ErrInvalidLevel indicates a level that cannot be searched.
	ErrInvalidLevel = errors.New("level: invalid level")

	// ErrNotFound indicates no level with the requested name.
	ErrNotFound = errors.New("level: not found")

	// ErrMismatch indicates a solution differing from the expected one.
	ErrMismatch = errors.New("level: solution differs from expected")
)

//go:embed levels/*.yaml
var builtin embed.FS

// Warp configures the level's warp portal.
type Warp struct {
	Enter int `yaml:"enter"`
	Exit  int `yaml:"exit"`
}

// Level is one puzzle.
type Level struct {
	Name              string   `yaml:"name"`
	Start             int64    `yaml:"start"`
	Target            int64    `yaml:"target"`
	Moves             int      `yaml:"moves"`
	Buttons           []string `yaml:"buttons"`
	Warp              *Warp    `yaml:"warp,omitempty"`
	StoreConsumesMove bool     `yaml:"store_consumes_move,omitempty"`
	Solution          []string `yaml:"solution,omitempty"`
}

// Parse decodes and validates a single YAML level. Unknown keys are errors.
func Parse(data []byte) (*Level, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var l Level
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLevel)
		}

		return nil, fmt.Errorf("level: decode: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &l, nil
}

// Load reads the level at path. A level without a name is named after
// its file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}

	return parseNamed(data, path)
}

// LoadDir reads every *.yaml and *.yml file in dir, sorted by file name.
func LoadDir(dir string) ([]*Level, error) {
	return loadFS(os.DirFS(dir), ".")
}

// Builtin returns the sample levels bundled with the package.
func Builtin() ([]*Level, error) {
	return loadFS(builtin, "levels")
}

func loadFS(fsys fs.FS, dir string) ([]*Level, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("level: read dir %s: %w", dir, err)
	}

	var levels []*Level
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		p := filepath.ToSlash(filepath.Join(dir, e.Name()))
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("level: read %s: %w", p, err)
		}
		l, err := parseNamed(data, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}

	return levels, nil
}

func parseNamed(data []byte, path string) (*Level, error) {
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return l, nil
}

// Find returns the level called name.
func Find(levels []*Level, name string) (*Level, error) {
	for _, l := range levels {
		if l.Name == name {
			return l, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Validate checks the move budget, the buttons and the warp.
func (l *Level) Validate() error {
	if l.Moves < 0 {
		return fmt.Errorf("%w: moves must be non-negative, got %d", ErrInvalidLevel, l.Moves)
	}
	if len(l.Buttons) == 0 {
		return fmt.Errorf("%w: no buttons", ErrInvalidLevel)
	}
	if _, err := l.Catalog(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	if l.Warp != nil {
		if _, err := ops.NewWarp(l.Warp.Enter, l.Warp.Exit); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
	}

	return nil
}

// Catalog returns freshly built operations for the level's buttons, so
// every search gets its own instances.
func (l *Level) Catalog() ([]ops.Operation, error) {
	return ops.ParseAll(l.Buttons)
}

// Options returns the tree options implied by the level.
func (l *Level) Options() ([]tree.Option, error) {
	opts := []tree.Option{tree.WithStoreConsumesMove(l.StoreConsumesMove)}
	if l.Warp != nil {
		w, err := ops.NewWarp(l.Warp.Enter, l.Warp.Exit)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tree.WithWarp(w))
	}

	return opts, nil
}

// Solve searches the level. Options in extra are applied after the
// level's own, so they can override them.
func (l *Level) Solve(extra ...tree.Option) (*tree.Result, error) {
	catalog, err := l.Catalog()
	if err != nil {
		return nil, err
	}
	opts, err := l.Options()
	if err != nil {
		return nil, err
	}

	return tree.Solve(l.Start, l.Target, l.Moves, catalog, append(opts, extra...)...)
}

// Check compares steps against the expected solution. A level without an
// expected solution accepts anything.
func (l *Level) Check(steps []string) error {
	if len(l.Solution) == 0 || slices.Equal(l.Solution, steps) {
		return nil
	}

	return fmt.Errorf("%w: %s: got %q, want %q", ErrMismatch, l.Name, steps, l.Solution)
}
