package capsule

import (
	"fmt"
	"os"

	"github.com/oliverbestmann/capsule/shell"
	"gopkg.in/yaml.v3"
)

// Profile declares which operations a deployment requires every erased
// type to supply. A type missing a required operation fails loudly
// when it first binds.
//
//	require:
//	  - format
//	  - calculate
type Profile struct {
	Require []string `yaml:"require"`
}

// ProfileFromYAML parses a profile document.
func ProfileFromYAML(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}

	if _, err := p.ops(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// LoadProfile reads and parses a profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	return ProfileFromYAML(data)
}

// Apply installs the profile's required operation set. Binding happens
// once per type, so Apply must run before the first type binds.
func (p Profile) Apply() error {
	ops, err := p.ops()
	if err != nil {
		return err
	}

	shell.SetRequired(ops...)
	return nil
}

func (p Profile) ops() ([]Op, error) {
	var ops []Op
	for _, name := range p.Require {
		op, err := shell.ParseOp(name)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// SetRequired installs the required operation subset directly, without
// going through a profile file.
func SetRequired(ops ...Op) {
	shell.SetRequired(ops...)
}

// Required returns the currently required operations.
func Required() []Op {
	return shell.Required()
}
