// Package grade renders a climb's recorded grades as a single display string.
//
// Each active discipline of a climb is mapped to a grading scale through a
// grade Context (regional conventions differ: bouldering is graded on the
// V-scale in the US and on Fontainebleau in France). The scale name is resolved
// to a Scale descriptor whose canonical Name keys into the climb's Values.
//
// Rendering never fails. An unknown context, an unresolvable scale or a
// missing grade value only drops that discipline from the output.
package grade

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Canonical names of the built-in scales.
const (
	ScaleYDS           = "yds"
	ScaleVScale        = "vscale"
	ScaleFont          = "font"
	ScaleFrench        = "french"
	ScaleUIAA          = "uiaa"
	ScaleEwbank        = "ewbank"
	ScaleSaxon         = "saxon"
	ScaleNorwegian     = "norwegian"
	ScaleBrazilianCrux = "brazilian_crux"
	ScaleWI            = "wi"
	ScaleAI            = "ai"
	ScaleAid           = "aid"
)

// Scale describes a grading system.
type Scale struct {
	Name        string `json:"name" yaml:"name"`                 // Canonical name, used as the key into Values
	DisplayName string `json:"display_name" yaml:"display_name"` // Human-readable label
}

// Values maps a scale's canonical name to the climb's grade on that scale.
type Values map[string]string

// UnmarshalJSON decodes a grades object. Null grades leave the scale absent,
// so they are skipped when rendering.
func (v *Values) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal grade values: %w", err)
	}
	if raw == nil {
		*v = nil
		return nil
	}

	decoded := make(Values, len(raw))
	for scale, value := range raw {
		if value != nil {
			decoded[scale] = *value
		}
	}

	*v = decoded
	return nil
}

// Resolver looks up a Scale by name.
// Implementations must be safe for concurrent reads.
type Resolver interface {
	Resolve(name string) (*Scale, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (*Scale, bool)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (*Scale, bool) {
	return f(name)
}

// Registry is an in-memory Resolver keyed by canonical name, with optional
// aliases. Populate it before sharing; it is not safe to mutate concurrently
// with Resolve.
type Registry struct {
	scales  map[string]*Scale
	aliases map[string]string
}

// NewRegistry creates a Registry holding the given scales.
func NewRegistry(scales ...Scale) *Registry {
	r := &Registry{
		scales:  make(map[string]*Scale, len(scales)),
		aliases: make(map[string]string),
	}
	for _, s := range scales {
		s := s
		r.scales[s.Name] = &s
	}
	return r
}

// DefaultRegistry returns a Registry with every built-in scale.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Scale{Name: ScaleYDS, DisplayName: "Yosemite Decimal System"},
		Scale{Name: ScaleVScale, DisplayName: "V-Scale"},
		Scale{Name: ScaleFont, DisplayName: "Fontainebleau"},
		Scale{Name: ScaleFrench, DisplayName: "French"},
		Scale{Name: ScaleUIAA, DisplayName: "UIAA"},
		Scale{Name: ScaleEwbank, DisplayName: "Ewbank"},
		Scale{Name: ScaleSaxon, DisplayName: "Saxon"},
		Scale{Name: ScaleNorwegian, DisplayName: "Norwegian"},
		Scale{Name: ScaleBrazilianCrux, DisplayName: "Brazilian Crux"},
		Scale{Name: ScaleWI, DisplayName: "Water Ice"},
		Scale{Name: ScaleAI, DisplayName: "Alpine Ice"},
		Scale{Name: ScaleAid, DisplayName: "Aid"},
	)
}

// Resolve returns the scale registered under name, trying canonical names
// before aliases.
func (r *Registry) Resolve(name string) (*Scale, bool) {
	if s, ok := r.scales[name]; ok {
		return s, true
	}
	if canonical, ok := r.aliases[name]; ok {
		s, ok := r.scales[canonical]
		return s, ok
	}
	return nil, false
}

// Alias makes alias resolve to the scale named canonical.
func (r *Registry) Alias(alias, canonical string) error {
	if strings.TrimSpace(alias) == "" {
		return fmt.Errorf("scale alias cannot be empty")
	}
	if _, ok := r.scales[canonical]; !ok {
		return fmt.Errorf("cannot alias %q: unknown scale %q", alias, canonical)
	}
	if _, ok := r.scales[alias]; ok && alias != canonical {
		return fmt.Errorf("cannot alias %q: it is already a scale name", alias)
	}
	r.aliases[alias] = canonical
	return nil
}

// Names returns the canonical names of every registered scale, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scales))
	for name := range r.scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
