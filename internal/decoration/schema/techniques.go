package schema

// Vocabularies shared by the schemas and by callers building select lists.
var (
	ColorSystems = []string{
		"Pantone",
		"RGB",
		"HEX",
		"CMYK",
		"Madeira Polyneon",
		"Madeira Classic Rayon",
		"Isacord Polyester",
		"Robison-Anton Polyester",
		"Custom",
	}
	Units = []string{"in", "cm", "mm"}

	InkTypes    = []string{"plastisol", "water-based", "discharge", "specialty"}
	InkOpacity  = []string{"low", "medium", "high"}
	FrameTypes  = []string{"wood", "aluminum", "roller"}
	ThreadTypes = []string{"polyester", "rayon", "metallic", "wool", "cotton"}
	StitchTypes = []string{"satin", "fill", "running", "tatami"}

	BackingTypes   = []string{"cut-away", "tear-away", "water-soluble"}
	BackingWeights = []string{"light", "medium", "heavy"}

	PretreatmentMethods = []string{"spray", "dip", "roller"}
	CureMethods         = []string{"heat press", "tunnel dryer"}

	MaterialTypes        = []string{"standard", "glitter", "reflective", "flock", "sublimation"}
	ApplicationPressures = []string{"light", "medium", "firm"}
	PeelTypes            = []string{"hot", "cold", "warm"}
)

func (r *Registry) screenPrintingSchema() ObjectNode {
	return Object(
		Required("inkType", Enum("Invalid ink type", InkTypes...)),
		Optional("inkColor", r.detailedColor),
		Optional("inkOpacity", Enum("Invalid opacity level", InkOpacity...)),
		Optional("cureTemperature", r.temperature),
		Default("flashRequired", Bool(), false),
		Optional("meshCount", Int().Positive("Mesh count must be positive")),
		Optional("frameType", Enum("Invalid frame type", FrameTypes...)),
		Optional("frameSize", String()),
		Default("maxColors", r.count, float64(1)),
		Optional("printOrder", Int().Min(0, "Print order must be non-negative")),
		Optional("squeegeeType", String()),
		Optional("squeegeeDurometer", Int().
			Min(50, "Durometer must be at least 50").
			Max(90, "Durometer must be at most 90")),
	)
}

func (r *Registry) embroiderySchema() ObjectNode {
	return Object(
		Required("threadType", Enum("Invalid thread type", ThreadTypes...)),
		Optional("threadWeight", String()),
		Optional("threadBrand", String()),
		Optional("threadColor", r.detailedColor),
		Optional("stitchType", Enum("Invalid stitch type", StitchTypes...)),
		Optional("stitchDensity", Number().Positive("Stitch density must be positive")),
		Optional("stitchCount", r.count),
		Optional("underlayType", String()),
		Optional("backingType", Enum("Invalid backing type", BackingTypes...)),
		Optional("backingWeight", Enum("Invalid backing weight", BackingWeights...)),
	)
}

func (r *Registry) dtgSchema() ObjectNode {
	return Object(
		Default("pretreatmentRequired", Bool(), false),
		Optional("pretreatmentType", String()),
		Optional("pretreatmentMethod", Enum("Invalid pretreatment method", PretreatmentMethods...)),
		Optional("resolution", Int().Min(300, "Resolution must be at least 300 DPI")),
		Optional("colorProfile", String()),
		Default("whiteUnderbase", Bool(), false),
		Default("whiteHighlight", Bool(), false),
		Optional("cureTemperature", r.temperature),
		Optional("cureTime", Int().Positive("Cure time must be positive")),
		Optional("cureMethod", Enum("Invalid cure method", CureMethods...)),
	)
}

func (r *Registry) vinylSchema() ObjectNode {
	return Object(
		Required("materialType", Enum("Invalid material type", MaterialTypes...)),
		Optional("materialColor", r.color),
		Optional("materialBrand", String()),
		Optional("cuttingForce", Int().Positive("Cutting force must be positive")),
		Optional("cuttingSpeed", Int().Positive("Cutting speed must be positive")),
		Optional("bladeDepth", Number().Positive("Blade depth must be positive")),
		Optional("applicationTemperature", r.temperature),
		Optional("applicationPressure", Enum("Invalid application pressure", ApplicationPressures...)),
		Optional("applicationTime", Int().Positive("Application time must be positive")),
		Optional("peelType", Enum("Invalid peel type", PeelTypes...)),
		Default("multiLayer", Bool(), false),
	)
}
