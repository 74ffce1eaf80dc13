package prior

import (
	"fmt"

	"github.com/cwdwatch/prevexport/pkg/record"
	"gopkg.in/yaml.v3"
)

// Catalog represents the complete catalog.yaml configuration: for
// each supported species, the fixed list of priors to evaluate. The
// catalog is data, not logic - it changes with versions of the
// estimation tool's schema, so it ships as a versioned yaml file.
type Catalog struct {
	// SchemaVersion tags the estimation tool schema the catalog
	// targets, e.g. "wtsurv-2024.1".
	SchemaVersion string `yaml:"schema_version"`

	// Species lists the per-species catalogs.
	Species []SpeciesCatalog `yaml:"species"`
}

// SpeciesCatalog is the fixed list of priors for one species.
type SpeciesCatalog struct {
	// Name is the species display name, e.g. "White-tailed Deer".
	Name string `yaml:"name"`

	// Priors enumerates the (source, age, sex) combinations the
	// estimation tool accepts for this species.
	Priors []KeyConfig `yaml:"priors"`
}

// KeyConfig is one catalog entry. Species is implied by the enclosing
// SpeciesCatalog.
type KeyConfig struct {
	Source string `yaml:"source"`
	Age    string `yaml:"age"`
	Sex    string `yaml:"sex"`
}

// Parse decodes and validates a catalog.yaml document.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("cannot parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

var validSources = map[string]struct{}{
	record.SourceClinicalSuspect:  {},
	record.SourceHunterHarvested:  {},
	record.SourceVehicleCollision: {},
	record.SourceFoundDead:        {},
	record.SourceSharpShot:        {},
	record.SourceOther:            {},
}

var validAges = map[string]struct{}{
	record.AgeAdult:    {},
	record.AgeYearling: {},
	record.AgeFawn:     {},
	record.AllAges:     {},
}

var validSexes = map[string]struct{}{
	record.SexFemale: {},
	record.SexMale:   {},
	record.AllSexes:  {},
}

// Validate checks the catalog for structural errors: missing schema
// version, unknown vocabulary values, duplicate keys.
func (c *Catalog) Validate() error {
	if c.SchemaVersion == "" {
		return fmt.Errorf("schema_version is required")
	}
	if len(c.Species) == 0 {
		return fmt.Errorf("no species catalogs specified")
	}
	for i := range c.Species {
		if err := c.Species[i].validate(); err != nil {
			return fmt.Errorf("species %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *SpeciesCatalog) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Priors) == 0 {
		return fmt.Errorf("%s: no priors specified", s.Name)
	}
	seen := make(map[KeyConfig]struct{})
	for _, p := range s.Priors {
		if _, ok := validSources[p.Source]; !ok {
			return fmt.Errorf("%s: unknown source %q", s.Name, p.Source)
		}
		if _, ok := validAges[p.Age]; !ok {
			return fmt.Errorf("%s: unknown age %q", s.Name, p.Age)
		}
		if _, ok := validSexes[p.Sex]; !ok {
			return fmt.Errorf("%s: unknown sex %q", s.Name, p.Sex)
		}
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%s: duplicate prior %s/%s/%s",
				s.Name, p.Source, p.Age, p.Sex)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// ForSpecies returns the catalog for one species display name, or nil
// if the species has no catalog.
func (c *Catalog) ForSpecies(name string) *SpeciesCatalog {
	for i := range c.Species {
		if c.Species[i].Name == name {
			return &c.Species[i]
		}
	}
	return nil
}

// Keys returns the species' priors as full keys, in catalog order.
func (s *SpeciesCatalog) Keys() []Key {
	keys := make([]Key, len(s.Priors))
	for i, p := range s.Priors {
		keys[i] = Key{
			Species: s.Name,
			Source:  p.Source,
			Age:     p.Age,
			Sex:     p.Sex,
		}
	}
	return keys
}

// EnumeratedSources returns the specific sources the species' catalog
// names. The Other bucket is their complement: a record matches Other
// exactly when its source is not enumerated here.
func (s *SpeciesCatalog) EnumeratedSources() map[string]struct{} {
	res := make(map[string]struct{})
	for _, p := range s.Priors {
		if p.Source != record.SourceOther {
			res[p.Source] = struct{}{}
		}
	}
	return res
}

// Matches reports whether a standardized record belongs to a key's
// subset. Specific buckets require equality; aggregate age/sex
// buckets accept any value, and the Other source bucket accepts any
// source the species' catalog does not enumerate.
func (s *SpeciesCatalog) Matches(k Key, r record.Record) bool {
	if r.Species != k.Species {
		return false
	}
	if k.Source == record.SourceOther {
		if _, enumerated := s.EnumeratedSources()[r.Source]; enumerated {
			return false
		}
	} else if r.Source != k.Source {
		return false
	}
	if !k.AggregateAge() && r.Age != k.Age {
		return false
	}
	if !k.AggregateSex() && r.Sex != k.Sex {
		return false
	}
	return true
}

// Subset selects the records belonging to a key, in input order.
func (s *SpeciesCatalog) Subset(k Key, recs []record.Record) []record.Record {
	var res []record.Record
	for _, r := range recs {
		if s.Matches(k, r) {
			res = append(res, r)
		}
	}
	return res
}
