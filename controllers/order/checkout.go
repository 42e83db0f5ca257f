package orderControllers

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/foresthealth/storefront-api/models"
	"github.com/foresthealth/storefront-api/store"
)

// freeShippingThreshold is the subtotal at which the flat fee is waived.
const (
	freeShippingThreshold = 50.0
	flatShippingFee       = 5.0
)

var (
	ErrEmptyCart       = errors.New("no items in order")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ProductNotFoundError names the cart line that could not be priced.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return "Product not found: " + e.ID
}

// -------- Request Structs --------

type CheckoutRequest struct {
	// dive makes the validator descend into each cart line, enforcing the
	// per-item product_id/quantity rules.
	Items    []models.CartItem   `json:"items" binding:"required,dive"`
	Customer models.CustomerInfo `json:"customer" binding:"required"`
	Notes    string              `json:"notes"`
}

type CheckoutResponse struct {
	OrderID *string            `json:"order_id"`
	Total   float64            `json:"total"`
	Status  models.OrderStatus `json:"status"`
}

// -------- Helpers --------

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func shippingFor(subtotal float64) float64 {
	if subtotal < freeShippingThreshold {
		return flatShippingFee
	}
	return 0.0
}

// generateOrderRef builds a unique human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// resolveProducts fetches every distinct, syntactically valid cart id in one
// $in query, then retries misses individually so a lagging batch read never
// fails a priceable cart.
func resolveProducts(ctx context.Context, s *store.Store, items []models.CartItem) (map[string]models.Product, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ProductID] {
			continue
		}
		seen[it.ProductID] = true
		if _, err := store.ParseID(it.ProductID); err == nil {
			ids = append(ids, it.ProductID)
		}
	}

	resolved := make(map[string]models.Product, len(ids))
	if s.Available() && len(ids) > 0 {
		var products []models.Product
		if err := s.FindByIDs(ctx, store.Products, ids, &products); err != nil {
			return nil, err
		}
		for _, p := range products {
			resolved[p.ID.Hex()] = p
		}
	}

	for _, it := range items {
		if _, ok := resolved[it.ProductID]; ok {
			continue
		}
		if s.Available() {
			var p models.Product
			if err := s.FindByID(ctx, store.Products, it.ProductID, &p); err == nil {
				resolved[it.ProductID] = p
				continue
			}
		}
		return nil, &ProductNotFoundError{ID: it.ProductID}
	}
	return resolved, nil
}

// priceOrder materializes an order from resolved prices. Each stored line
// total is rounded to 2 decimals for display, but the authoritative subtotal
// accumulates the unrounded products and is rounded once, so
// total == round2(subtotal + shipping) holds exactly.
func priceOrder(items []models.CartItem, products map[string]models.Product, customer models.CustomerInfo, notes string) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var subtotal float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return models.Order{}, ErrInvalidQuantity
		}
		p, ok := products[it.ProductID]
		if !ok {
			return models.Order{}, &ProductNotFoundError{ID: it.ProductID}
		}
		lineTotal := p.Price * float64(it.Quantity)
		subtotal += lineTotal
		orderItems = append(orderItems, models.OrderItem{
			ProductID: p.ID.Hex(),
			Title:     p.Title,
			Price:     p.Price,
			Quantity:  it.Quantity,
			LineTotal: round2(lineTotal),
		})
	}

	shipping := shippingFor(subtotal)
	return models.Order{
		OrderRef:  generateOrderRef(),
		Items:     orderItems,
		Customer:  customer,
		Notes:     notes,
		Subtotal:  round2(subtotal),
		Shipping:  shipping,
		Total:     round2(subtotal + shipping),
		Status:    models.OrderStatusReceived,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// -------- Handlers --------

// CheckoutHandler prices the cart against current catalog prices and
// persists the resulting order. All-or-nothing: any unresolvable line fails
// the whole request and nothing is written. If the store cannot persist the
// order the caller still gets a priced result with a null order_id.
func CheckoutHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No items in order"})
			return
		}

		ctx := c.Request.Context()
		products, err := resolveProducts(ctx, s, req.Items)
		if err != nil {
			var notFound *ProductNotFoundError
			if errors.As(err, &notFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": notFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve products"})
			return
		}

		order, err := priceOrder(req.Items, products, req.Customer, req.Notes)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var orderID *string
		if s.Available() {
			id, err := s.InsertOne(ctx, store.Orders, order)
			if err != nil {
				log.Printf("⚠️ Failed to persist order %s: %v", order.OrderRef, err)
			} else {
				orderID = &id
			}
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			OrderID: orderID,
			Total:   order.Total,
			Status:  order.Status,
		})
	}
}
