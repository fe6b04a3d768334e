// Package config loads tricount run settings from a TOML file.
//
// Example file:
//
//	method = "auto"              # auto, direct, forward-hash, forward-merge, forward-binary, oriented
//	small_graph_threshold = 100
//	reorder_edge_threshold = 16384
//	reorder = "auto"             # auto, highest, lowest, none
//	validate = true
//	max_workspace_bytes = 0      # 0 = unlimited
//
// Keys left out keep their Default value. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tricount/reorder"
	"github.com/katalvlaran/tricount/triangle"
)

// Reorder values accepted besides the reorder.Direction names.
const (
	ReorderAuto = "auto"
	ReorderNone = "none"
)

var (
	// ErrUnknownKey is returned when the file has keys Config does not define.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid is returned when a value is out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config mirrors triangle.Options in file form.
type Config struct {
	Method               string `toml:"method"`
	SmallGraphThreshold  int    `toml:"small_graph_threshold"`
	ReorderEdgeThreshold int    `toml:"reorder_edge_threshold"`
	Reorder              string `toml:"reorder"`
	Validate             bool   `toml:"validate"`
	MaxWorkspaceBytes    int64  `toml:"max_workspace_bytes"`
}

// Default returns the configuration equivalent to triangle.DefaultOptions.
func Default() Config {
	d := triangle.DefaultOptions()
	return Config{
		Method:               d.Method.String(),
		SmallGraphThreshold:  d.SmallGraphThreshold,
		ReorderEdgeThreshold: d.ReorderEdgeThreshold,
		Reorder:              ReorderAuto,
		Validate:             d.Validate,
		MaxWorkspaceBytes:    d.MaxWorkspace,
	}
}

// Load decodes the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	if err = cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Check validates every field.
func (c Config) Check() error {
	if _, err := triangle.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: method: %w", ErrInvalid, err)
	}
	if c.SmallGraphThreshold < 0 {
		return fmt.Errorf("%w: small_graph_threshold=%d < 0", ErrInvalid, c.SmallGraphThreshold)
	}
	if c.ReorderEdgeThreshold < 0 {
		return fmt.Errorf("%w: reorder_edge_threshold=%d < 0", ErrInvalid, c.ReorderEdgeThreshold)
	}
	if c.MaxWorkspaceBytes < 0 {
		return fmt.Errorf("%w: max_workspace_bytes=%d < 0", ErrInvalid, c.MaxWorkspaceBytes)
	}
	switch c.Reorder {
	case ReorderAuto, ReorderNone:
	default:
		if _, err := reorder.ParseDirection(c.Reorder); err != nil {
			return fmt.Errorf("%w: reorder=%q", ErrInvalid, c.Reorder)
		}
	}
	return nil
}

// Options validates c and maps it to triangle options.
func (c Config) Options() ([]triangle.Option, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	method, _ := triangle.ParseMethod(c.Method)
	opts := []triangle.Option{
		triangle.WithMethod(method),
		triangle.WithSmallGraphThreshold(c.SmallGraphThreshold),
		triangle.WithReorderEdgeThreshold(c.ReorderEdgeThreshold),
		triangle.WithValidation(c.Validate),
		triangle.WithMaxWorkspace(c.MaxWorkspaceBytes),
	}
	switch c.Reorder {
	case ReorderAuto:
	case ReorderNone:
		opts = append(opts, triangle.WithoutReorder())
	default:
		dir, _ := reorder.ParseDirection(c.Reorder)
		opts = append(opts, triangle.WithReorder(dir))
	}
	return opts, nil
}
