package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Badge       string             `bson:"badge,omitempty" json:"badge,omitempty"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}

// ProductInput is the admin create/update payload. Category is a free-text
// label; no referential check against the category collection is made.
type ProductInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Badge       string  `json:"badge"`
	InStock     *bool   `json:"in_stock"`
}

// SampleProducts seeds an empty store and doubles as the offline fallback
// for the public product listing.
var SampleProducts = []Product{
	{
		Title:       "Forest Greens Superfood Blend",
		Description: "Organic spirulina, chlorella, and wheatgrass for daily vitality.",
		Price:       24.99,
		Category:    "supplements",
		InStock:     true,
		Image:       "/images/greens.jpg",
		Badge:       "Best Seller",
	},
	{
		Title:       "Herbal Calm Tea",
		Description: "Chamomile, lemon balm, and passionflower for gentle relaxation.",
		Price:       12.5,
		Category:    "wellness",
		InStock:     true,
		Image:       "/images/tea.jpg",
		Badge:       "Soothing",
	},
	{
		Title:       "Bamboo Fiber Bottle",
		Description: "Eco-friendly reusable bottle with soft-touch finish.",
		Price:       18.0,
		Category:    "eco",
		InStock:     true,
		Image:       "/images/bottle.jpg",
		Badge:       "Eco Choice",
	},
	{
		Title:       "Wild Berry Vitamin C",
		Description: "Naturally flavored chews for immune support.",
		Price:       14.0,
		Category:    "supplements",
		InStock:     true,
		Image:       "/images/vitamin-c.jpg",
		Badge:       "New",
	},
}
