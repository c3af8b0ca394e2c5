// Package species provides the closed set of species profiles the
// extraction pipeline can run against.
//
// A profile binds a species code to its two lookup tables (gene
// annotation spreadsheet and GO legend TSV) and to the rule used to
// derive the locus join key from a gene identifier. Profiles are
// defined in species.yaml, which the CLI copies to the config
// directory on first run so users can adjust the lookup-table paths.
package species

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver loads the species registry from its configured location.
type Resolver interface {
	Load() (*Registry, error)
}

// LocusRule determines how a locus join key is derived from a gene
// identifier.
type LocusRule int

const (
	// LocusVerbatim uses the gene identifier unchanged.
	LocusVerbatim LocusRule = iota

	// LocusSplitDot truncates the identifier at the first ".".
	// Tomato identifiers carry version suffixes (Solyc00g005000.2.1);
	// the part before the first dot is the locus shared across tables.
	LocusSplitDot
)

// String implements fmt.Stringer for LocusRule.
func (lr LocusRule) String() string {
	switch lr {
	case LocusSplitDot:
		return "split-dot"
	default:
		return "verbatim"
	}
}

// UnmarshalYAML parses a LocusRule from its YAML representation
// ("verbatim" or "split-dot").
func (lr *LocusRule) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbatim":
		*lr = LocusVerbatim
	case "split-dot":
		*lr = LocusSplitDot
	default:
		return fmt.Errorf("unknown locus rule: %q", s)
	}
	return nil
}

// MarshalYAML serializes a LocusRule back to its string form.
func (lr LocusRule) MarshalYAML() (interface{}, error) {
	return lr.String(), nil
}

// Profile binds a species code to its lookup tables and locus rule.
type Profile struct {
	// Code is the selector typed by the user (S, SW, A).
	Code string `yaml:"code"`

	// Name is the human-readable species description.
	Name string `yaml:"name"`

	// Annotation is the path to the gene annotation spreadsheet.
	Annotation string `yaml:"annotation"`

	// Legend is the path to the GO legend TSV file.
	Legend string `yaml:"legend"`

	// Locus selects the locus derivation rule for this species.
	Locus LocusRule `yaml:"locus_rule"`
}

// LocusKey derives the locus join key from a gene identifier
// according to the profile's locus rule.
func (p Profile) LocusKey(geneID string) string {
	if p.Locus == LocusVerbatim {
		return geneID
	}
	locus, _, _ := strings.Cut(geneID, ".")
	return locus
}

// Registry represents the species.yaml configuration file.
type Registry struct {
	Profiles []Profile `yaml:"profiles"`
}

// Parse reads a Registry from YAML bytes.
func Parse(data []byte) (*Registry, error) {
	var res Registry
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	if len(res.Profiles) == 0 {
		return nil, fmt.Errorf("species registry has no profiles")
	}
	return &res, nil
}

// Codes returns the profile codes in registry order.
func (r *Registry) Codes() []string {
	res := make([]string, len(r.Profiles))
	for i, p := range r.Profiles {
		res[i] = p.Code
	}
	return res
}

// Resolve finds the profile for a species code. The match is
// case-insensitive and ignores surrounding whitespace. An unknown
// code returns UnknownSpeciesError and must abort the run.
func (r *Registry) Resolve(code string) (Profile, error) {
	norm := strings.ToUpper(strings.TrimSpace(code))
	for _, p := range r.Profiles {
		if strings.ToUpper(p.Code) == norm {
			return p, nil
		}
	}
	return Profile{}, UnknownSpeciesError(code, r.Codes())
}
