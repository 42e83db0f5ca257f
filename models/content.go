package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type TrustItem struct {
	Icon  string `bson:"icon,omitempty" json:"icon,omitempty"`
	Title string `bson:"title" json:"title"`
	Text  string `bson:"text" json:"text"`
}

type Testimonial struct {
	Quote  string `bson:"quote" json:"quote"`
	Author string `bson:"author" json:"author"`
	Role   string `bson:"role,omitempty" json:"role,omitempty"`
}

// Content is the singleton document behind the storefront CMS. At most one
// record is expected in the content collection.
type Content struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HeroTitle            string             `bson:"hero_title" json:"hero_title"`
	HeroSubtitle         string             `bson:"hero_subtitle" json:"hero_subtitle"`
	HeroCTAText          string             `bson:"hero_cta_text" json:"hero_cta_text"`
	HeroSecondaryCTAText string             `bson:"hero_secondary_cta_text" json:"hero_secondary_cta_text"`
	HeroBadges           []string           `bson:"hero_badges" json:"hero_badges"`
	HeroImage            string             `bson:"hero_image,omitempty" json:"hero_image,omitempty"`
	SplineURL            string             `bson:"spline_url,omitempty" json:"spline_url,omitempty"`
	TrustItems           []TrustItem        `bson:"trust_items" json:"trust_items"`
	Testimonials         []Testimonial      `bson:"testimonials" json:"testimonials"`
}

// ContentPatch is a partial update: nil fields are left untouched. There is
// no way to explicitly clear a field to empty; that matches the contract the
// storefront admin UI relies on.
type ContentPatch struct {
	HeroTitle            *string        `json:"hero_title"`
	HeroSubtitle         *string        `json:"hero_subtitle"`
	HeroCTAText          *string        `json:"hero_cta_text"`
	HeroSecondaryCTAText *string        `json:"hero_secondary_cta_text"`
	HeroBadges           *[]string      `json:"hero_badges"`
	HeroImage            *string        `json:"hero_image"`
	SplineURL            *string        `json:"spline_url"`
	TrustItems           *[]TrustItem   `json:"trust_items"`
	Testimonials         *[]Testimonial `json:"testimonials"`
}

// DefaultContent returns the record seeded on first startup and served when
// the store is unreachable.
func DefaultContent() Content {
	return Content{
		HeroTitle:            "Wellness from the Forest",
		HeroSubtitle:         "Pure, eco-friendly goods crafted with care. Fresh, holistic, and delightfully simple for everyday vitality.",
		HeroCTAText:          "Order Online",
		HeroSecondaryCTAText: "Our Promise",
		HeroBadges: []string{
			"• Certified organic",
			"• Plastic-free shipping",
			"• 30-day happiness guarantee",
		},
		TrustItems: []TrustItem{
			{Icon: "Leaf", Title: "Organic & Pure", Text: "Sourced from trusted growers"},
			{Icon: "ShieldCheck", Title: "Quality Assured", Text: "Third‑party tested"},
			{Icon: "Truck", Title: "Fast, Eco Shipping", Text: "Carbon‑aware logistics"},
			{Icon: "HandHeart", Title: "Giveback", Text: "1% to reforestation"},
		},
		Testimonials: []Testimonial{
			{Quote: "The flavors are fresh and the ritual calms me.", Author: "Mara L.", Role: "Designer"},
			{Quote: "Feels premium without being wasteful.", Author: "Ravi P.", Role: "Trainer"},
			{Quote: "Love the soft, modern vibe and quality.", Author: "Jules K.", Role: "Nutritionist"},
		},
	}
}
