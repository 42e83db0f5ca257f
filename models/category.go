package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slug  string             `bson:"slug" json:"slug"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

// CategoryInput is the admin create/update payload. Duplicate names and
// slugs are permitted; categories have no lifecycle tie to products.
type CategoryInput struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
	Image string `json:"image"`
}
