package schema

var (
	ReferencePoints = []string{"collar", "shoulder seam", "center", "bottom hem"}
	GarmentTypes    = []string{"tshirt", "hoodie", "hat", "polo", "jacket"}
	UpchargeTypes   = []string{"flat", "percentage", "per_color", "per_thousand_stitches"}
)

func (r *Registry) techniqueCatalogSchema() ObjectNode {
	return Object(
		Required("name", String().Min(1, "Name is required")),
		Optional("description", String()),
		Default("isActive", Bool(), true),
		Default("setupFee", Number().Min(0, "Setup fee must be non-negative"), float64(0)),
		Default("minimumOrder", Int().Min(1, "Minimum order must be at least 1"), float64(1)),
	)
}

func (r *Registry) placementSchema() ObjectNode {
	return Object(
		Required("name", String().Min(1, "Name is required")),
		Optional("description", String()),
		Optional("maxWidth", r.measurement),
		Optional("maxHeight", r.measurement),
		Optional("positionX", Number()),
		Optional("positionY", Number()),
		Optional("referencePoint", Enum("Invalid reference point", ReferencePoints...)),
		Optional("garmentType", Enum("Invalid garment type", GarmentTypes...)),
	)
}

func (r *Registry) upchargeSchema() ObjectNode {
	return Object(
		Required("name", String().Min(1, "Name is required")),
		Optional("description", String()),
		Required("upchargeType", Enum("Invalid upcharge type", UpchargeTypes...)),
		Required("upchargeAmount", Number().Positive("Upcharge amount must be positive")),
		Default("isActive", Bool(), true),
	)
}

func (r *Registry) lineItemDecorationSchema() ObjectNode {
	return Object(
		Required("techniqueId", String().UUID("Invalid technique ID")),
		Required("placementId", String().UUID("Invalid placement ID")),
		Optional("artworkId", String().UUID("Invalid artwork ID")),
		Optional("colorsCount", r.count),
		Optional("width", r.measurement),
		Optional("height", r.measurement),
		Optional("notes", String()),
		Required("price", Number().Min(0, "Price must be non-negative")),
	)
}
