package weather

// Type tags a weather variant. The presentation layer maps these to icons;
// the engine only ever compares the tag.
type Type string

const (
	TypeHot    Type = "Hot"
	TypeSunny  Type = "Sunny"
	TypeMild   Type = "Mild"
	TypeWindy  Type = "Windy"
	TypeRainy  Type = "Rainy"
	TypeStormy Type = "Stormy"
)

// Variant is one entry of the fixed weather catalog.
type Variant struct {
	Type          Type    `json:"type"`
	BaseCustomers int     `json:"base_customers"`
	Multiplier    float64 `json:"multiplier"`
}

// catalog is the fixed ordered set of variants. Order only matters for the
// uniform draw, not for semantics.
var catalog = []Variant{
	{Type: TypeHot, BaseCustomers: 40, Multiplier: 1.5},
	{Type: TypeSunny, BaseCustomers: 30, Multiplier: 1.2},
	{Type: TypeMild, BaseCustomers: 25, Multiplier: 1.0},
	{Type: TypeWindy, BaseCustomers: 20, Multiplier: 0.7},
	{Type: TypeRainy, BaseCustomers: 15, Multiplier: 0.5},
	{Type: TypeStormy, BaseCustomers: 8, Multiplier: 0.3},
}

// Variants returns a copy of the catalog in its fixed order.
func Variants() []Variant {
	out := make([]Variant, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a type tag back to its catalog entry.
func Lookup(t Type) (Variant, bool) {
	for _, v := range catalog {
		if v.Type == t {
			return v, true
		}
	}
	return Variant{}, false
}

// Forecast draws a uniformly random variant. Uniform over the catalog, not
// weighted by any field.
func Forecast(r Rand) Variant {
	return catalog[r.IntN(len(catalog))]
}

// Actual draws the weather that governs a day's demand: the forecast with
// probability accuracy, otherwise a fresh uniform draw. The fallback draw
// may land on the forecast again; the stated accuracy slightly understates
// the true hit rate and that is intentional, so do not exclude the forecast
// from the re-draw.
func Actual(r Rand, forecast Variant, accuracy float64) Variant {
	if r.Float64() < accuracy {
		return forecast
	}
	return Forecast(r)
}
