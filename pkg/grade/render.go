package grade

import (
	"strings"

	"github.com/dyluth/belay/pkg/discipline"
	"go.uber.org/zap"
)

// Renderer turns grade Values into a display string.
// A Renderer holds no mutable state and is safe for concurrent use.
type Renderer struct {
	resolver Resolver
	contexts ContextTable
	logger   *zap.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolver sets the scale resolver. Defaults to DefaultRegistry().
func WithResolver(r Resolver) Option {
	return func(rd *Renderer) {
		rd.resolver = r
	}
}

// WithContexts sets the context table. Defaults to DefaultContexts().
func WithContexts(t ContextTable) Option {
	return func(rd *Renderer) {
		rd.contexts = t
	}
}

// WithLogger sets the logger used to report skipped disciplines at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(rd *Renderer) {
		rd.logger = l
	}
}

// NewRenderer creates a Renderer with the built-in registry and contexts
// unless overridden by opts.
func NewRenderer(opts ...Option) *Renderer {
	rd := &Renderer{}
	for _, opt := range opts {
		opt(rd)
	}
	if rd.resolver == nil {
		rd.resolver = DefaultRegistry()
	}
	if rd.contexts == nil {
		rd.contexts = DefaultContexts()
	}
	if rd.logger == nil {
		rd.logger = zap.NewNop()
	}
	return rd
}

var defaultRenderer = NewRenderer()

// ToString renders values with the built-in registry and context table.
func ToString(values Values, disciplines discipline.Record, ctx Context) string {
	return defaultRenderer.String(values, disciplines, ctx)
}

// String returns the grade of every active discipline, joined by single
// spaces, in canonical discipline order.
//
// It returns "" when values is nil or ctx is unknown. A discipline is left out
// when ctx assigns it no scale, when the scale does not resolve, or when
// values has no entry for the scale's canonical name.
func (rd *Renderer) String(values Values, disciplines discipline.Record, ctx Context) string {
	if values == nil {
		return ""
	}

	scales, ok := rd.contexts.Lookup(ctx)
	if !ok {
		rd.logger.Debug("unknown grade context", zap.String("context", string(ctx)))
		return ""
	}

	grades := make([]string, 0, len(disciplines))
	for _, k := range disciplines.Active() {
		scaleName, ok := scales[k]
		if !ok {
			rd.logger.Debug("no scale for discipline",
				zap.String("context", string(ctx)),
				zap.String("discipline", string(k)))
			continue
		}

		scale, ok := rd.resolver.Resolve(scaleName)
		if !ok || scale == nil {
			rd.logger.Debug("scale not found",
				zap.String("discipline", string(k)),
				zap.String("scale", scaleName))
			continue
		}

		v, ok := values[scale.Name]
		if !ok {
			rd.logger.Debug("no grade on scale",
				zap.String("discipline", string(k)),
				zap.String("scale", scale.Name))
			continue
		}
		grades = append(grades, v)
	}

	return strings.Join(grades, " ")
}
