package entity

// Wire-faithful shapes for the remote platform's Admin REST product
// resources. The platform owns every entity here; the panel only holds
// request-scoped copies and never assigns ids itself.

type Product struct {
	ID        int64     `json:"id,omitempty"`
	Title     string    `json:"title,omitempty"`
	BodyHTML  string    `json:"body_html,omitempty"`
	Vendor    string    `json:"vendor,omitempty"`
	Status    string    `json:"status,omitempty"`
	Tags      string    `json:"tags,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty"`
	Image     *Image    `json:"image"`
	Images    []Image   `json:"images,omitempty"`
	Variants  []Variant `json:"variants,omitempty"`
}

// DefaultVariant returns the first variant, the only one the panel
// manipulates. A listed product always carries at least one variant; callers
// must treat a nil result as a data error coming from the platform.
func (p *Product) DefaultVariant() *Variant {
	if len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

type Variant struct {
	ID        int64  `json:"id,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	Title     string `json:"title,omitempty"`
	// Price is a decimal carried as a string on the wire.
	Price      string      `json:"price,omitempty"`
	Position   int         `json:"position,omitempty"`
	Metafields []Metafield `json:"metafields,omitempty"`
}

type Image struct {
	ID        int64  `json:"id,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	Position  int    `json:"position,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Alt       string `json:"alt,omitempty"`
	Src       string `json:"src,omitempty"`
	// Attachment is the base64 payload used when uploading; the platform
	// returns Src instead once the image is stored.
	Attachment string      `json:"attachment,omitempty"`
	Filename   string      `json:"filename,omitempty"`
	Metafields []Metafield `json:"metafields,omitempty"`
}

type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}
