package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infraRepo "github.com/senicpos/pos-api/internal/infrastructure/repository"
)

// TenantIDHeader carries the caller's tenant identifier.
const TenantIDHeader = "X-Tenant-ID"

// TenantMiddleware reads the tenant ID header and places it in both the
// Gin context and the request context. The header is optional; endpoints
// carry tenant IDs explicitly in their bodies and paths, and the context
// value only feeds rate limiting and idempotency.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(TenantIDHeader)
		if header == "" {
			c.Set("tenant_id", uuid.Nil)
			c.Next()
			return
		}

		tenantID, err := uuid.Parse(header)
		if err != nil {
			c.Set("tenant_id", uuid.Nil)
			c.Next()
			return
		}

		c.Set("tenant_id", tenantID)

		ctx := infraRepo.WithTenant(c.Request.Context(), tenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenantID retrieves the tenant ID from gin context
func GetTenantID(c *gin.Context) uuid.UUID {
	tenantID, exists := c.Get("tenant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := tenantID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
