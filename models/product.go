package models

import "time"

// Categories is the two-slot category tag on a product.
type Categories struct {
	Occasion string `json:"occasion,omitempty" bson:"occasion,omitempty"`
	Fandom   string `json:"fandom,omitempty" bson:"fandom,omitempty"`
}

// Product is immutable reference data for a session: loaded once, never
// mutated by the storefront.
type Product struct {
	ProductID       string     `json:"id" bson:"productId"`
	Name            string     `json:"name" bson:"name"`
	Price           int64      `json:"price" bson:"price"` // minor currency units
	OldPrice        int64      `json:"oldPrice,omitempty" bson:"oldPrice,omitempty"`
	SalePercentage  int        `json:"salePercentage,omitempty" bson:"salePercentage,omitempty"`
	Image           string     `json:"image" bson:"image"`
	Image2          string     `json:"image2,omitempty" bson:"image2,omitempty"`
	Description     string     `json:"description,omitempty" bson:"description,omitempty"`
	Details         []string   `json:"details,omitempty" bson:"details,omitempty"`
	Type            string     `json:"type,omitempty" bson:"type,omitempty"`
	FlowerType      string     `json:"flowerType,omitempty" bson:"flowerType,omitempty"`
	Size            string     `json:"size,omitempty" bson:"size,omitempty"`
	Categories      Categories `json:"categories" bson:"categories"`
	RelatedProducts []string   `json:"relatedProducts,omitempty" bson:"relatedProducts,omitempty"`
	CreatedAt       time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
