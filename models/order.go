package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	// Orders are immutable after checkout, so "received" is currently the
	// only status ever written.
	OrderStatusReceived OrderStatus = "received"
)

// CartItem is checkout input only; carts are never persisted.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=1"`
}

type CustomerInfo struct {
	Name       string `bson:"name" json:"name" binding:"required"`
	Email      string `bson:"email" json:"email" binding:"required,email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string `bson:"address" json:"address" binding:"required"`
	City       string `bson:"city" json:"city" binding:"required"`
	Country    string `bson:"country" json:"country" binding:"required"`
	PostalCode string `bson:"postal_code" json:"postal_code" binding:"required"`
}

// OrderItem snapshots the product at checkout time so later catalog edits
// never change what the customer was charged.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	LineTotal float64 `bson:"line_total" json:"line_total"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderRef  string             `bson:"order_ref" json:"order_ref"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Customer  CustomerInfo       `bson:"customer" json:"customer"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Subtotal  float64            `bson:"subtotal" json:"subtotal"`
	Shipping  float64            `bson:"shipping" json:"shipping"`
	Total     float64            `bson:"total" json:"total"`
	Status    OrderStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
