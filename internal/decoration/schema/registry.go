package schema

import (
	"fmt"

	"decor-golang/internal/decoration"
)

// Registry holds every decoration schema. It is built once by NewRegistry
// and only read afterwards, so a single Registry is safe for concurrent use.
type Registry struct {
	strictTechnique bool

	color         StringNode
	dimension     NumberNode
	temperature   NumberNode
	count         NumberNode
	detailedColor ObjectNode
	measurement   ObjectNode

	techniques    []techniqueSchema
	techniqueEnum EnumNode
	configuration ObjectNode

	techniqueCatalog   ObjectNode
	placement          ObjectNode
	upcharge           ObjectNode
	lineItemDecoration ObjectNode
}

// techniqueSchema binds a technique to the configuration key holding its
// details and the schema of those details.
type techniqueSchema struct {
	technique decoration.Technique
	key       string
	node      ObjectNode
}

type Option func(*Registry)

// WithStrictTechnique rejects details for any technique other than the one
// named by the technique field. Enabled by default.
func WithStrictTechnique(strict bool) Option {
	return func(r *Registry) {
		r.strictTechnique = strict
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{strictTechnique: true}
	for _, opt := range opts {
		opt(r)
	}

	r.color = String().Min(1, "Color is required")
	r.dimension = Number().Positive("Dimension must be positive")
	r.temperature = Number().Min(0, "Temperature must be non-negative")
	r.count = Int().Min(1, "Count must be at least 1")
	r.detailedColor = Object(
		Required("value", String().Min(1, "Color value is required")),
		Required("system", Enum("Invalid color system", ColorSystems...)),
		Optional("description", String()),
	)
	r.measurement = Object(
		Required("value", Number().Positive("Measurement value must be positive")),
		Required("unit", Enum("Invalid unit of measurement", Units...)),
	)

	r.techniques = []techniqueSchema{
		{technique: decoration.ScreenPrinting, key: "screenPrinting", node: r.screenPrintingSchema()},
		{technique: decoration.Embroidery, key: "embroidery", node: r.embroiderySchema()},
		{technique: decoration.DTG, key: "dtg", node: r.dtgSchema()},
		{technique: decoration.Vinyl, key: "vinyl", node: r.vinylSchema()},
	}

	names := make([]string, 0, len(r.techniques))
	for _, t := range r.techniques {
		names = append(names, string(t.technique))
	}
	r.techniqueEnum = Enum("Invalid decoration technique", names...)

	fields := []Field{
		Required("technique", r.techniqueEnum),
		Required("placement", String().Min(1, "Placement is required")),
		Optional("colors", Array(r.detailedColor)),
		Optional("colorsCount", r.count),
		Optional("width", r.measurement),
		Optional("height", r.measurement),
		Optional("artworkUrl", String().URL("Invalid artwork URL")),
		Optional("notes", String()),
	}
	for _, t := range r.techniques {
		fields = append(fields, Optional(t.key, t.node))
	}
	r.configuration = Object(fields...)
	if r.strictTechnique {
		r.configuration = r.configuration.Refine(r.matchTechnique)
	}

	r.techniqueCatalog = r.techniqueCatalogSchema()
	r.placement = r.placementSchema()
	r.upcharge = r.upchargeSchema()
	r.lineItemDecoration = r.lineItemDecorationSchema()

	return r
}

// matchTechnique flags details supplied for a technique other than the
// selected one. It stays silent while the technique itself is invalid.
func (r *Registry) matchTechnique(in map[string]any, errs *ErrorTree) {
	selected, ok := in["technique"].(string)
	if !ok || !r.techniqueEnum.Contains(selected) {
		return
	}
	for _, t := range r.techniques {
		if string(t.technique) == selected {
			continue
		}
		if _, present := in[t.key]; present {
			errs.Child(t.key).Add(fmt.Sprintf("Details for %s do not match technique %s", t.technique, selected))
		}
	}
}

func (r *Registry) StrictTechnique() bool { return r.strictTechnique }

func (r *Registry) Color() StringNode         { return r.color }
func (r *Registry) Dimension() NumberNode     { return r.dimension }
func (r *Registry) Temperature() NumberNode   { return r.temperature }
func (r *Registry) Count() NumberNode         { return r.count }
func (r *Registry) DetailedColor() ObjectNode { return r.detailedColor }
func (r *Registry) Measurement() ObjectNode   { return r.measurement }

// Configuration is the schema of the decoration_details record.
func (r *Registry) Configuration() ObjectNode { return r.configuration }

// Technique returns the details schema of t.
func (r *Registry) Technique(t decoration.Technique) (ObjectNode, bool) {
	for _, ts := range r.techniques {
		if ts.technique == t {
			return ts.node, true
		}
	}
	return ObjectNode{}, false
}

// TechniqueKey returns the configuration key that holds the details of t.
func (r *Registry) TechniqueKey(t decoration.Technique) (string, bool) {
	for _, ts := range r.techniques {
		if ts.technique == t {
			return ts.key, true
		}
	}
	return "", false
}

func (r *Registry) TechniqueCatalog() ObjectNode   { return r.techniqueCatalog }
func (r *Registry) Placement() ObjectNode          { return r.placement }
func (r *Registry) Upcharge() ObjectNode           { return r.upcharge }
func (r *Registry) LineItemDecoration() ObjectNode { return r.lineItemDecoration }
