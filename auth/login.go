package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foresthealth/storefront-api/config"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks the configured admin credential pair and hands back
// the shared bearer token. There is no per-user identity and no expiry; the
// token is whatever the deployment configured.
func LoginHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.Username != cfg.AdminUsername || req.Password != cfg.AdminPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": cfg.AdminToken})
	}
}
