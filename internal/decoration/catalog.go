package decoration

// TechniqueCatalog is a company level decoration technique offering.
type TechniqueCatalog struct {
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	IsActive     bool    `json:"isActive"`
	SetupFee     float64 `json:"setupFee"`
	MinimumOrder int     `json:"minimumOrder"`
}

// Placement is a named location on a garment a company decorates.
type Placement struct {
	Name           string       `json:"name"`
	Description    *string      `json:"description,omitempty"`
	MaxWidth       *Measurement `json:"maxWidth,omitempty"`
	MaxHeight      *Measurement `json:"maxHeight,omitempty"`
	PositionX      *float64     `json:"positionX,omitempty"`
	PositionY      *float64     `json:"positionY,omitempty"`
	ReferencePoint *string      `json:"referencePoint,omitempty"`
	GarmentType    *string      `json:"garmentType,omitempty"`
}

// Upcharge types.
const (
	UpchargeFlat                = "flat"
	UpchargePercentage          = "percentage"
	UpchargePerColor            = "per_color"
	UpchargePerThousandStitches = "per_thousand_stitches"
)

// Upcharge is an extra fee attached to a technique.
type Upcharge struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	UpchargeType   string  `json:"upchargeType"`
	UpchargeAmount float64 `json:"upchargeAmount"`
	IsActive       bool    `json:"isActive"`
}

// LineItemDecoration references catalog rows instead of carrying free form details.
type LineItemDecoration struct {
	TechniqueID string       `json:"techniqueId"`
	PlacementID string       `json:"placementId"`
	ArtworkID   *string      `json:"artworkId,omitempty"`
	ColorsCount *int         `json:"colorsCount,omitempty"`
	Width       *Measurement `json:"width,omitempty"`
	Height      *Measurement `json:"height,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	Price       float64      `json:"price"`
}
