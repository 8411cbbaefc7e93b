package internal

import (
	"fmt"
	"os"

	"github.com/sensiblebit/pemscan"
	"gopkg.in/yaml.v3"
)

// kindNames maps profile/flag kind names to their bit flags.
var kindNames = map[string]pemscan.Kind{
	"certificate":     pemscan.KindCertificate,
	"private-key":     pemscan.KindPrivateKey,
	"rsa-private-key": pemscan.KindRSAPrivateKey,
	"any":             pemscan.KindAny,
}

// ParseKinds converts kind names to a combined mask. An empty list means
// every supported kind.
func ParseKinds(names []string) (pemscan.Kind, error) {
	if len(names) == 0 {
		return pemscan.KindAny, nil
	}
	var mask pemscan.Kind
	for _, name := range names {
		k, ok := kindNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown kind %q (use certificate, private-key, rsa-private-key, or any)", name)
		}
		mask |= k
	}
	return mask, nil
}

// Profile is one scan profile entry from the YAML file: which object kinds
// to accept and whether to stop at the first match.
type Profile struct {
	Name       string   `yaml:"name"`
	Kinds      []string `yaml:"kinds"`
	FirstMatch bool     `yaml:"firstMatch,omitempty"`
}

// profileYAML is the full profile file: a default plus named profiles.
type profileYAML struct {
	Default  *Profile  `yaml:"default,omitempty"`
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfile loads the named scan profile from a YAML file. An empty name
// selects the file's default entry, falling back to the first profile.
func LoadProfile(path, name string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg profileYAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile file %s: %w", path, err)
	}

	if name == "" {
		if cfg.Default != nil {
			return cfg.Default, nil
		}
		if len(cfg.Profiles) > 0 {
			return &cfg.Profiles[0], nil
		}
		return nil, fmt.Errorf("profile file %s has no profiles", path)
	}
	for i := range cfg.Profiles {
		if cfg.Profiles[i].Name == name {
			return &cfg.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile %q not found in %s", name, path)
}

// Filter compiles the profile to a decode filter.
func (p *Profile) Filter() (pemscan.Filter, error) {
	mask, err := ParseKinds(p.Kinds)
	if err != nil {
		return nil, err
	}
	if p.FirstMatch {
		return pemscan.FirstOf(mask), nil
	}
	return pemscan.KindFilter(mask), nil
}
