package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/foresthealth/storefront-api/models"
)

func testCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		Name:       "Mara L.",
		Email:      "mara@example.com",
		Address:    "1 Forest Way",
		City:       "Portland",
		Country:    "US",
		PostalCode: "97201",
	}
}

func productWithPrice(price float64) models.Product {
	return models.Product{
		ID:      primitive.NewObjectID(),
		Title:   "Forest Greens Superfood Blend",
		Price:   price,
		InStock: true,
	}
}

func TestPriceOrder(t *testing.T) {
	t.Run("two units below free shipping threshold", func(t *testing.T) {
		p := productWithPrice(24.99)
		items := []models.CartItem{{ProductID: p.ID.Hex(), Quantity: 2}}

		order, err := priceOrder(items, map[string]models.Product{p.ID.Hex(): p}, testCustomer(), "")
		require.NoError(t, err)

		require.Len(t, order.Items, 1)
		assert.Equal(t, 49.98, order.Items[0].LineTotal)
		assert.Equal(t, 49.98, order.Subtotal)
		assert.Equal(t, 5.00, order.Shipping)
		assert.Equal(t, 54.98, order.Total)
	})

	t.Run("three units reach free shipping", func(t *testing.T) {
		p := productWithPrice(24.99)
		items := []models.CartItem{{ProductID: p.ID.Hex(), Quantity: 3}}

		order, err := priceOrder(items, map[string]models.Product{p.ID.Hex(): p}, testCustomer(), "")
		require.NoError(t, err)

		assert.Equal(t, 74.97, order.Subtotal)
		assert.Equal(t, 0.00, order.Shipping)
		assert.Equal(t, 74.97, order.Total)
	})

	t.Run("total equals rounded subtotal plus shipping", func(t *testing.T) {
		a := productWithPrice(12.5)
		b := productWithPrice(18.0)
		items := []models.CartItem{
			{ProductID: a.ID.Hex(), Quantity: 1},
			{ProductID: b.ID.Hex(), Quantity: 2},
		}
		products := map[string]models.Product{a.ID.Hex(): a, b.ID.Hex(): b}

		order, err := priceOrder(items, products, testCustomer(), "gift wrap please")
		require.NoError(t, err)

		assert.Equal(t, round2(order.Subtotal+order.Shipping), order.Total)
		assert.Equal(t, "gift wrap please", order.Notes)
		assert.Equal(t, models.OrderStatusReceived, order.Status)
		assert.NotEmpty(t, order.OrderRef)
	})

	t.Run("line items snapshot title and unit price", func(t *testing.T) {
		p := productWithPrice(14.0)
		items := []models.CartItem{{ProductID: p.ID.Hex(), Quantity: 4}}

		order, err := priceOrder(items, map[string]models.Product{p.ID.Hex(): p}, testCustomer(), "")
		require.NoError(t, err)

		line := order.Items[0]
		assert.Equal(t, p.ID.Hex(), line.ProductID)
		assert.Equal(t, p.Title, line.Title)
		assert.Equal(t, 14.0, line.Price)
		assert.Equal(t, 4, line.Quantity)
		assert.Equal(t, 56.0, line.LineTotal)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := priceOrder(nil, nil, testCustomer(), "")
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("negative quantity never prices a negative order", func(t *testing.T) {
		p := productWithPrice(24.99)
		items := []models.CartItem{{ProductID: p.ID.Hex(), Quantity: -3}}

		_, err := priceOrder(items, map[string]models.Product{p.ID.Hex(): p}, testCustomer(), "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		p := productWithPrice(12.5)
		items := []models.CartItem{{ProductID: p.ID.Hex(), Quantity: 0}}

		_, err := priceOrder(items, map[string]models.Product{p.ID.Hex(): p}, testCustomer(), "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unresolved product fails the whole order", func(t *testing.T) {
		p := productWithPrice(24.99)
		missing := primitive.NewObjectID().Hex()
		items := []models.CartItem{
			{ProductID: p.ID.Hex(), Quantity: 1},
			{ProductID: missing, Quantity: 1},
		}

		_, err := priceOrder(items, map[string]models.Product{p.ID.Hex(): p}, testCustomer(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product not found: "+missing)
	})
}

func TestShippingFor(t *testing.T) {
	assert.Equal(t, 5.00, shippingFor(0.01))
	assert.Equal(t, 5.00, shippingFor(49.99))
	assert.Equal(t, 0.00, shippingFor(50.00))
	assert.Equal(t, 0.00, shippingFor(120.0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 49.98, round2(24.99*2))
	assert.Equal(t, 74.97, round2(24.99*3))
	assert.Equal(t, 0.1, round2(0.10000000001))
}

func TestCheckoutHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		// nil store: reads fall back, resolution misses everything
		r.POST("/api/checkout", CheckoutHandler(nil))
		return r
	}

	t.Run("empty cart is 400", func(t *testing.T) {
		body := `{"items":[],"customer":{"name":"A","email":"a@b.co","address":"x","city":"y","country":"z","postal_code":"1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No items in order")
	})

	t.Run("unresolvable product is 400 naming the id", func(t *testing.T) {
		id := primitive.NewObjectID().Hex()
		body := `{"items":[{"product_id":"` + id + `","quantity":1}],"customer":{"name":"A","email":"a@b.co","address":"x","city":"y","country":"z","postal_code":"1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Product not found: "+id)
	})

	t.Run("negative quantity fails validation, not resolution", func(t *testing.T) {
		body := `{"items":[{"product_id":"","quantity":-3}],"customer":{"name":"A","email":"a@b.co","address":"x","city":"y","country":"z","postal_code":"1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Product not found")
	})

	t.Run("omitted quantity is 400", func(t *testing.T) {
		id := primitive.NewObjectID().Hex()
		body := `{"items":[{"product_id":"` + id + `"}],"customer":{"name":"A","email":"a@b.co","address":"x","city":"y","country":"z","postal_code":"1"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"items":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
