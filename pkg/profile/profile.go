// Package profile loads named grammar presets from a YAML file so the
// CLI can instantiate a grammar (operators, variable count, cost
// bound) without the caller writing Go code. It never describes an
// arbitrary textual grammar — only which of a fixed family of
// operators to include and how many variables/what cost bound to use
// — so the core's "no textual grammar parsing" non-goal (spec.md §1)
// is untouched.
package profile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Profile is one named preset.
type Profile struct {
	Variables int      `yaml:"variables" validate:"gte=1"`
	Cost      int      `yaml:"cost" validate:"gte=0"`
	Operators []string `yaml:"operators" validate:"required,min=1,dive,required"`
}

// File is the top-level shape of a profile YAML document.
type File struct {
	Profiles map[string]Profile `yaml:"profiles" validate:"required,min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the profile file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", path, err)
	}

	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("profile: invalid %s: %w", path, err)
	}

	for name, p := range f.Profiles {
		if err := validate.Struct(&p); err != nil {
			return nil, fmt.Errorf("profile: invalid profile %q: %w", name, err)
		}
	}

	return &f, nil
}

// Get looks up a named profile, reporting a clear error if it is
// absent rather than returning a zero-value Profile silently.
func (f *File) Get(name string) (Profile, error) {
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile: no profile named %q", name)
	}
	return p, nil
}

// Default returns the built-in profile set (andnot, ltl, ctl) used
// when no --profile-file is given, mirroring the three driver
// programs the reference library shipped as separate binaries.
func Default() *File {
	return &File{
		Profiles: map[string]Profile{
			"andnot": {
				Variables: 3,
				Cost:      5,
				Operators: []string{"not", "and"},
			},
			"ltl": {
				Variables: 3,
				Cost:      5,
				Operators: []string{"not", "and", "or", "globally", "eventually", "next", "until"},
			},
			"ctl": {
				Variables: 3,
				Cost:      3,
				Operators: []string{
					"not", "and", "or",
					"e-globally", "e-eventually", "e-next", "e-until",
					"a-globally", "a-eventually", "a-next", "a-until",
				},
			},
		},
	}
}
