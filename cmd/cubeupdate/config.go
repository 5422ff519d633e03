package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/rectpack"
	"github.com/gogpu/rectpack/evict"
)

// config is the run configuration. It can be read from a TOML file and
// individual values overridden with flags.
type config struct {
	Faces    int    `toml:"faces"`
	Side     int    `toml:"side"`
	MaxNodes int    `toml:"max_nodes"`
	Order    string `toml:"order"`

	Frames int    `toml:"frames"`
	Seed   uint64 `toml:"seed"`

	Policy string `toml:"policy"`
	Evict  int    `toml:"evict"`
	Retry  bool   `toml:"retry"`
}

func defaultConfig() config {
	return config{
		Faces:    rectpack.DefaultFaces,
		Side:     rectpack.DefaultSide,
		MaxNodes: rectpack.DefaultMaxNodes,
		Order:    rectpack.OrderAscending.String(),
		Frames:   10000,
		Seed:     1,
		Policy:   "fifo",
		Evict:    evict.DefaultBatch,
	}
}

// loadConfig decodes the TOML file at path over cfg.
// Unknown keys are rejected so that typos do not go unnoticed.
func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c config) atlasConfig() (rectpack.Config, error) {
	order, err := rectpack.ParseFaceOrder(c.Order)
	if err != nil {
		return rectpack.Config{}, err
	}
	cfg := rectpack.Config{
		Faces:    c.Faces,
		Side:     c.Side,
		MaxNodes: c.MaxNodes,
		Order:    order,
	}
	return cfg, cfg.Validate()
}

func (c config) policy() (evict.Policy, error) {
	switch c.Policy {
	case "fifo", "":
		return evict.NewFIFO(), nil
	case "lru":
		return evict.NewLRU(c.Faces * c.MaxNodes)
	}
	return nil, fmt.Errorf("unknown eviction policy %q (want fifo or lru)", c.Policy)
}
