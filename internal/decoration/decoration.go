// Package decoration holds the typed shape of a line item decoration
// configuration and of the company level decoration catalog.
package decoration

// Technique selects which technique details apply to a configuration.
type Technique string

const (
	ScreenPrinting Technique = "screen_printing"
	Embroidery     Technique = "embroidery"
	DTG            Technique = "dtg"
	Vinyl          Technique = "vinyl"
)

// Techniques lists every supported technique in declaration order.
var Techniques = []Technique{ScreenPrinting, Embroidery, DTG, Vinyl}

// Configuration is the decoration_details payload attached to a line item.
type Configuration struct {
	Technique   Technique       `json:"technique" jsonschema:"enum=screen_printing,enum=embroidery,enum=dtg,enum=vinyl,required"`
	Placement   string          `json:"placement" jsonschema:"minLength=1,required"`
	Colors      []DetailedColor `json:"colors,omitempty"`
	ColorsCount *int            `json:"colorsCount,omitempty" jsonschema:"minimum=1"`
	Width       *Measurement    `json:"width,omitempty"`
	Height      *Measurement    `json:"height,omitempty"`
	ArtworkURL  *string         `json:"artworkUrl,omitempty" jsonschema:"format=uri"`
	Notes       *string         `json:"notes,omitempty"`

	ScreenPrinting *ScreenPrintingDetails `json:"screenPrinting,omitempty"`
	Embroidery     *EmbroideryDetails     `json:"embroidery,omitempty"`
	DTG            *DTGDetails            `json:"dtg,omitempty"`
	Vinyl          *VinylDetails          `json:"vinyl,omitempty"`
}

type DetailedColor struct {
	Value       string  `json:"value" jsonschema:"minLength=1,required"`
	System      string  `json:"system" jsonschema:"enum=Pantone,enum=RGB,enum=HEX,enum=CMYK,enum=Madeira Polyneon,enum=Madeira Classic Rayon,enum=Isacord Polyester,enum=Robison-Anton Polyester,enum=Custom,required"`
	Description *string `json:"description,omitempty"`
}

type Measurement struct {
	Value float64 `json:"value" jsonschema:"required,description=Must be positive"`
	Unit  string  `json:"unit" jsonschema:"enum=in,enum=cm,enum=mm,required"`
}

type ScreenPrintingDetails struct {
	InkType           string         `json:"inkType" jsonschema:"enum=plastisol,enum=water-based,enum=discharge,enum=specialty,required"`
	InkColor          *DetailedColor `json:"inkColor,omitempty"`
	InkOpacity        *string        `json:"inkOpacity,omitempty" jsonschema:"enum=low,enum=medium,enum=high"`
	CureTemperature   *float64       `json:"cureTemperature,omitempty" jsonschema:"minimum=0"`
	FlashRequired     bool           `json:"flashRequired"`
	MeshCount         *int           `json:"meshCount,omitempty" jsonschema:"minimum=1"`
	FrameType         *string        `json:"frameType,omitempty" jsonschema:"enum=wood,enum=aluminum,enum=roller"`
	FrameSize         *string        `json:"frameSize,omitempty"`
	MaxColors         int            `json:"maxColors" jsonschema:"minimum=1,default=1"`
	PrintOrder        *int           `json:"printOrder,omitempty" jsonschema:"minimum=0"`
	SqueegeeType      *string        `json:"squeegeeType,omitempty"`
	SqueegeeDurometer *int           `json:"squeegeeDurometer,omitempty" jsonschema:"minimum=50,maximum=90"`
}

type EmbroideryDetails struct {
	ThreadType    string         `json:"threadType" jsonschema:"enum=polyester,enum=rayon,enum=metallic,enum=wool,enum=cotton,required"`
	ThreadWeight  *string        `json:"threadWeight,omitempty"`
	ThreadBrand   *string        `json:"threadBrand,omitempty"`
	ThreadColor   *DetailedColor `json:"threadColor,omitempty"`
	StitchType    *string        `json:"stitchType,omitempty" jsonschema:"enum=satin,enum=fill,enum=running,enum=tatami"`
	StitchDensity *float64       `json:"stitchDensity,omitempty" jsonschema:"description=Must be positive"`
	StitchCount   *int           `json:"stitchCount,omitempty" jsonschema:"minimum=1"`
	UnderlayType  *string        `json:"underlayType,omitempty"`
	BackingType   *string        `json:"backingType,omitempty" jsonschema:"enum=cut-away,enum=tear-away,enum=water-soluble"`
	BackingWeight *string        `json:"backingWeight,omitempty" jsonschema:"enum=light,enum=medium,enum=heavy"`
}

type DTGDetails struct {
	PretreatmentRequired bool     `json:"pretreatmentRequired"`
	PretreatmentType     *string  `json:"pretreatmentType,omitempty"`
	PretreatmentMethod   *string  `json:"pretreatmentMethod,omitempty" jsonschema:"enum=spray,enum=dip,enum=roller"`
	Resolution           *int     `json:"resolution,omitempty" jsonschema:"minimum=300"`
	ColorProfile         *string  `json:"colorProfile,omitempty"`
	WhiteUnderbase       bool     `json:"whiteUnderbase"`
	WhiteHighlight       bool     `json:"whiteHighlight"`
	CureTemperature      *float64 `json:"cureTemperature,omitempty" jsonschema:"minimum=0"`
	CureTime             *int     `json:"cureTime,omitempty" jsonschema:"minimum=1"`
	CureMethod           *string  `json:"cureMethod,omitempty" jsonschema:"enum=heat press,enum=tunnel dryer"`
}

type VinylDetails struct {
	MaterialType           string   `json:"materialType" jsonschema:"enum=standard,enum=glitter,enum=reflective,enum=flock,enum=sublimation,required"`
	MaterialColor          *string  `json:"materialColor,omitempty" jsonschema:"minLength=1"`
	MaterialBrand          *string  `json:"materialBrand,omitempty"`
	CuttingForce           *int     `json:"cuttingForce,omitempty" jsonschema:"minimum=1"`
	CuttingSpeed           *int     `json:"cuttingSpeed,omitempty" jsonschema:"minimum=1"`
	BladeDepth             *float64 `json:"bladeDepth,omitempty" jsonschema:"description=Must be positive"`
	ApplicationTemperature *float64 `json:"applicationTemperature,omitempty" jsonschema:"minimum=0"`
	ApplicationPressure    *string  `json:"applicationPressure,omitempty" jsonschema:"enum=light,enum=medium,enum=firm"`
	ApplicationTime        *int     `json:"applicationTime,omitempty" jsonschema:"minimum=1"`
	PeelType               *string  `json:"peelType,omitempty" jsonschema:"enum=hot,enum=cold,enum=warm"`
	MultiLayer             bool     `json:"multiLayer"`
}

// Details returns the technique details matching c.Technique, or nil.
func (c Configuration) Details() any {
	switch c.Technique {
	case ScreenPrinting:
		if c.ScreenPrinting != nil {
			return c.ScreenPrinting
		}
	case Embroidery:
		if c.Embroidery != nil {
			return c.Embroidery
		}
	case DTG:
		if c.DTG != nil {
			return c.DTG
		}
	case Vinyl:
		if c.Vinyl != nil {
			return c.Vinyl
		}
	}
	return nil
}
