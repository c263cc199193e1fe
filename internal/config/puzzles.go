// Package config loads the optional puzzle tunables file.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/gridpuzzles/internal/fsutil"
	"github.com/banshee-data/gridpuzzles/internal/raster"
	"github.com/banshee-data/gridpuzzles/internal/render"
	"github.com/banshee-data/gridpuzzles/internal/scanner"
)

// DefaultConfigPath is the path to the canonical puzzle defaults file.
const DefaultConfigPath = "config/puzzles.defaults.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// PuzzleConfig holds the tunables shared by the puzzle binaries. Every field
// is optional; the Get* methods supply the default for anything left unset,
// so partial files are safe.
type PuzzleConfig struct {
	// Vents
	OccupancyThreshold *int  `json:"occupancy_threshold,omitempty" yaml:"occupancy_threshold,omitempty"`
	IncludeDiagonals   *bool `json:"include_diagonals,omitempty" yaml:"include_diagonals,omitempty"`

	// Beacons
	OverlapThreshold *int `json:"overlap_threshold,omitempty" yaml:"overlap_threshold,omitempty"`

	// Fold rendering
	FilledMark *string `json:"filled_mark,omitempty" yaml:"filled_mark,omitempty"`
	EmptyMark  *string `json:"empty_mark,omitempty" yaml:"empty_mark,omitempty"`
}

func ptrInt(v int) *int          { return &v }
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }

// Load reads a PuzzleConfig from the OS filesystem.
func Load(path string) (*PuzzleConfig, error) {
	return LoadFS(fsutil.OSFileSystem{}, path)
}

// LoadFS reads a PuzzleConfig from fsys. The extension picks the decoder:
// .json, .yaml or .yml. Files over 1MB are rejected.
func LoadFS(fsys fsutil.FileSystem, path string) (*PuzzleConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	info, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &PuzzleConfig{}
	if ext == ".json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", ext, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path from fsys, or returns an empty config (every Get*
// at its default) when path is "".
func LoadOrDefault(fsys fsutil.FileSystem, path string) (*PuzzleConfig, error) {
	if path == "" {
		return &PuzzleConfig{}, nil
	}
	return LoadFS(fsys, path)
}

// MustLoadDefaultConfig loads DefaultConfigPath, searching upwards from the
// working directory. Panics if the file cannot be loaded; intended for tests.
func MustLoadDefaultConfig() *PuzzleConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,    // from internal/config/ and cmd/fold/
		"../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that any set values are usable.
func (c *PuzzleConfig) Validate() error {
	if c.OccupancyThreshold != nil && *c.OccupancyThreshold < 1 {
		return fmt.Errorf("occupancy_threshold must be at least 1, got %d", *c.OccupancyThreshold)
	}
	if c.OverlapThreshold != nil && *c.OverlapThreshold < 1 {
		return fmt.Errorf("overlap_threshold must be at least 1, got %d", *c.OverlapThreshold)
	}
	if c.FilledMark != nil && utf8.RuneCountInString(*c.FilledMark) != 1 {
		return fmt.Errorf("filled_mark must be a single character, got %q", *c.FilledMark)
	}
	if c.EmptyMark != nil && utf8.RuneCountInString(*c.EmptyMark) != 1 {
		return fmt.Errorf("empty_mark must be a single character, got %q", *c.EmptyMark)
	}
	if c.FilledMark != nil && c.EmptyMark != nil && *c.FilledMark == *c.EmptyMark {
		return fmt.Errorf("filled_mark and empty_mark must differ, both are %q", *c.FilledMark)
	}
	return nil
}

// GetOccupancyThreshold returns the occupancy_threshold value or the default.
func (c *PuzzleConfig) GetOccupancyThreshold() int {
	if c.OccupancyThreshold == nil {
		return raster.DefaultThreshold
	}
	return *c.OccupancyThreshold
}

// GetOverlapThreshold returns the overlap_threshold value or the default.
func (c *PuzzleConfig) GetOverlapThreshold() int {
	if c.OverlapThreshold == nil {
		return scanner.DefaultOverlapThreshold
	}
	return *c.OverlapThreshold
}

// GetIncludeDiagonals returns the include_diagonals value or the default.
func (c *PuzzleConfig) GetIncludeDiagonals() bool {
	if c.IncludeDiagonals == nil {
		return true
	}
	return *c.IncludeDiagonals
}

// GetFilledMark returns the filled_mark value or the default.
func (c *PuzzleConfig) GetFilledMark() string {
	if c.FilledMark == nil {
		return string(render.DefaultMarks.Filled)
	}
	return *c.FilledMark
}

// GetEmptyMark returns the empty_mark value or the default.
func (c *PuzzleConfig) GetEmptyMark() string {
	if c.EmptyMark == nil {
		return string(render.DefaultMarks.Empty)
	}
	return *c.EmptyMark
}

// Marks returns the grid glyphs for the fold renderer.
func (c *PuzzleConfig) Marks() render.Marks {
	filled, _ := utf8.DecodeRuneInString(c.GetFilledMark())
	empty, _ := utf8.DecodeRuneInString(c.GetEmptyMark())
	return render.Marks{Filled: filled, Empty: empty}
}
