package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/foresthealth/storefront-api/config"
)

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: "forest123",
		AdminToken:    "forest-admin-token",
	}

	r := gin.New()
	r.POST("/api/login", LoginHandler(cfg))

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid credentials return the shared token", func(t *testing.T) {
		rec := do(`{"username":"admin","password":"forest123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"forest-admin-token"}`, rec.Body.String())
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		rec := do(`{"username":"admin","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong username is 401", func(t *testing.T) {
		rec := do(`{"username":"root","password":"forest123"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		rec := do(`{"username":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
