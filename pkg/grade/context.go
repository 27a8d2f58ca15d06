package grade

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dyluth/belay/pkg/discipline"
)

// Context selects which scale grades each discipline.
type Context string

// Built-in grade contexts.
const (
	ContextUS   Context = "US"
	ContextAU   Context = "AU"
	ContextBRZ  Context = "BRZ"
	ContextFR   Context = "FR"
	ContextSA   Context = "SA"
	ContextUIAA Context = "UIAA"
)

// ScaleMap maps a discipline to the name of the scale it is graded on.
type ScaleMap map[discipline.Key]string

// ContextTable maps each Context to its ScaleMap.
type ContextTable map[Context]ScaleMap

// DefaultContexts returns a fresh copy of the built-in context table.
func DefaultContexts() ContextTable {
	return ContextTable{
		ContextUS: {
			discipline.Trad:          ScaleYDS,
			discipline.Sport:         ScaleYDS,
			discipline.Bouldering:    ScaleVScale,
			discipline.TopRope:       ScaleYDS,
			discipline.DeepWaterSolo: ScaleYDS,
			discipline.Alpine:        ScaleYDS,
			discipline.Mixed:         ScaleYDS,
			discipline.Aid:           ScaleAid,
			discipline.Snow:          ScaleYDS,
			discipline.Ice:           ScaleWI,
		},
		ContextAU: {
			discipline.Trad:          ScaleEwbank,
			discipline.Sport:         ScaleEwbank,
			discipline.Bouldering:    ScaleVScale,
			discipline.TopRope:       ScaleEwbank,
			discipline.DeepWaterSolo: ScaleEwbank,
			discipline.Alpine:        ScaleYDS,
			discipline.Mixed:         ScaleYDS,
			discipline.Aid:           ScaleAid,
			discipline.Snow:          ScaleYDS,
			discipline.Ice:           ScaleWI,
		},
		ContextBRZ: {
			discipline.Trad:          ScaleBrazilianCrux,
			discipline.Sport:         ScaleBrazilianCrux,
			discipline.Bouldering:    ScaleVScale,
			discipline.TopRope:       ScaleBrazilianCrux,
			discipline.DeepWaterSolo: ScaleBrazilianCrux,
			discipline.Alpine:        ScaleYDS,
			discipline.Mixed:         ScaleYDS,
			discipline.Aid:           ScaleAid,
			discipline.Snow:          ScaleYDS,
			discipline.Ice:           ScaleWI,
		},
		ContextFR: {
			discipline.Trad:          ScaleFrench,
			discipline.Sport:         ScaleFrench,
			discipline.Bouldering:    ScaleFont,
			discipline.TopRope:       ScaleFrench,
			discipline.DeepWaterSolo: ScaleFrench,
			discipline.Alpine:        ScaleFrench,
			discipline.Mixed:         ScaleFrench,
			discipline.Aid:           ScaleAid,
			discipline.Snow:          ScaleFrench,
			discipline.Ice:           ScaleWI,
		},
		ContextSA: {
			discipline.Trad:          ScaleFrench,
			discipline.Sport:         ScaleFrench,
			discipline.Bouldering:    ScaleFont,
			discipline.TopRope:       ScaleFrench,
			discipline.DeepWaterSolo: ScaleFrench,
			discipline.Alpine:        ScaleFrench,
			discipline.Mixed:         ScaleFrench,
			discipline.Aid:           ScaleAid,
			discipline.Snow:          ScaleFrench,
			discipline.Ice:           ScaleWI,
		},
		ContextUIAA: {
			discipline.Trad:          ScaleUIAA,
			discipline.Sport:         ScaleUIAA,
			discipline.Bouldering:    ScaleFont,
			discipline.TopRope:       ScaleUIAA,
			discipline.DeepWaterSolo: ScaleUIAA,
			discipline.Alpine:        ScaleUIAA,
			discipline.Mixed:         ScaleUIAA,
			discipline.Aid:           ScaleAid,
			discipline.Snow:          ScaleUIAA,
			discipline.Ice:           ScaleWI,
		},
	}
}

// Lookup returns the ScaleMap for ctx.
func (t ContextTable) Lookup(ctx Context) (ScaleMap, bool) {
	m, ok := t[ctx]
	return m, ok
}

// Merge returns a new table with other overlaid on t. Contexts present in
// both are merged per discipline, with other winning.
func (t ContextTable) Merge(other ContextTable) ContextTable {
	merged := make(ContextTable, len(t)+len(other))
	for _, src := range []ContextTable{t, other} {
		for ctx, scales := range src {
			dst, ok := merged[ctx]
			if !ok {
				dst = make(ScaleMap, len(scales))
				merged[ctx] = dst
			}
			for k, name := range scales {
				dst[k] = name
			}
		}
	}
	return merged
}

// Contexts returns every context in t, sorted.
func (t ContextTable) Contexts() []Context {
	contexts := make([]Context, 0, len(t))
	for ctx := range t {
		contexts = append(contexts, ctx)
	}
	sort.Slice(contexts, func(i, j int) bool { return contexts[i] < contexts[j] })
	return contexts
}

// ParseContext normalizes s to upper case and checks that t knows it.
func (t ContextTable) ParseContext(s string) (Context, error) {
	ctx := Context(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := t[ctx]; !ok {
		return "", fmt.Errorf("unknown grade context: %q", s)
	}
	return ctx, nil
}
