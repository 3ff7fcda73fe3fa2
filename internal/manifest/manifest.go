package manifest

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cbout22/scaffold/internal/config"
)

//go:embed targets.toml
var defaultTargets []byte

// Manifest is the ordered list of files to scaffold.
type Manifest struct {
	Targets []string `toml:"targets"`
}

// Parse decodes a manifest document. Unknown keys and empty entries are
// rejected so that a typo in the embedded list fails loudly in tests.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("parsing manifest: unknown keys: %s", strings.Join(keys, ", "))
	}

	for i, p := range m.Targets {
		if err := config.TargetPath(p).Validate(); err != nil {
			return nil, fmt.Errorf("parsing manifest: targets[%d]: %w", i, err)
		}
	}

	return &m, nil
}

// Default returns the target list compiled into the binary.
// It panics if the embedded document is malformed.
func Default() *Manifest {
	m, err := Parse(defaultTargets)
	if err != nil {
		panic(err)
	}
	return m
}

// Paths returns the targets in declaration order.
func (m *Manifest) Paths() []config.TargetPath {
	paths := make([]config.TargetPath, 0, len(m.Targets))
	for _, p := range m.Targets {
		paths = append(paths, config.TargetPath(p))
	}
	return paths
}
