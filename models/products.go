package models

// VariantType is a selectable option dimension of a product.
type VariantType string

const (
	VariantColor VariantType = "color"
	VariantSize  VariantType = "size"
	VariantStyle VariantType = "style"
)

// Variant is one value of a variant type, e.g. color=black.
type Variant struct {
	Type  VariantType `json:"type"`
	Value string      `json:"value"`
	Label string      `json:"label"`
	Stock int         `json:"stock"`
}

type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Seller struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Logo      string  `json:"logo"`
	Rating    float64 `json:"rating"`
	Followers int     `json:"followers"`
}

type PerfumeNotes struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

// Product tags shown as badges.
const (
	TagOfficialStore = "Official Store"
	TagMall          = "Mall"
	TagSale          = "Sale"
	TagNewArrival    = "New Arrival"
)

// Product is a catalog record. Rating and ReviewCount are derived from Reviews
// and are only changed through the review flow.
type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Images         []string        `json:"images"`
	VideoURL       string          `json:"videoUrl,omitempty"`
	Price          float64         `json:"price"`
	OriginalPrice  *float64        `json:"originalPrice,omitempty"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	Stock          int             `json:"stock"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	Tags           []string        `json:"tags"`
	Variants       []Variant       `json:"variants"`
	Specifications []Specification `json:"specifications"`
	Reviews        []Review        `json:"reviews"`
	FAQs           []FAQ           `json:"faqs"`
	Seller         Seller          `json:"seller"`
	PerfumeNotes   *PerfumeNotes   `json:"perfumeNotes,omitempty"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string(nil), p.Images...)
	c.Tags = append([]string(nil), p.Tags...)
	c.Variants = append([]Variant(nil), p.Variants...)
	c.Specifications = append([]Specification(nil), p.Specifications...)
	c.FAQs = append([]FAQ(nil), p.FAQs...)
	c.Reviews = make([]Review, len(p.Reviews))
	for i, r := range p.Reviews {
		c.Reviews[i] = r.Clone()
	}
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		c.OriginalPrice = &op
	}
	if p.PerfumeNotes != nil {
		notes := PerfumeNotes{
			Top:    append([]string(nil), p.PerfumeNotes.Top...),
			Middle: append([]string(nil), p.PerfumeNotes.Middle...),
			Base:   append([]string(nil), p.PerfumeNotes.Base...),
		}
		c.PerfumeNotes = &notes
	}
	return c
}

// VariantTypes lists the distinct variant types offered, in first-seen order.
func (p Product) VariantTypes() []VariantType {
	var types []VariantType
	seen := make(map[VariantType]bool)
	for _, v := range p.Variants {
		if !seen[v.Type] {
			seen[v.Type] = true
			types = append(types, v.Type)
		}
	}
	return types
}

// FindVariant returns the variant with the given type and value.
func (p Product) FindVariant(t VariantType, value string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Type == t && v.Value == value {
			return v, true
		}
	}
	return Variant{}, false
}

// OnSale reports whether the product carries a higher original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}
