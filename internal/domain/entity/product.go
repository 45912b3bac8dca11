// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a sellable catalog item. Products are loaded once from the
// catalog source and are immutable afterwards; prices are integral VND.
type Product struct {
	ID            string   `json:"id"`            // Catalog identifier of the product.
	Name          string   `json:"name"`          // Display name, e.g. "Móc khóa Hà Nội".
	Description   string   `json:"description"`   // Short marketing description.
	Price         int64    `json:"price"`         // Current selling price in VND.
	OriginalPrice int64    `json:"originalPrice"` // Pre-discount price in VND; 0 when the product is not discounted.
	Images        []string `json:"images"`        // Image URLs, first one is the cover.
	Category      string   `json:"category"`      // Category identifier, e.g. "moc-khoa".
	Tags          []string `json:"tags"`          // Free-form tags used by search.
	InStock       bool     `json:"inStock"`       // Whether the product can currently be ordered.
	Rating        float64  `json:"rating"`        // Average review rating, 0-5.
	ReviewCount   int      `json:"reviewCount"`   // Number of reviews behind the rating.
}

// Category groups products for browsing.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}
