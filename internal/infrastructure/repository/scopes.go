package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// TenantIDKey is the context key for tenant ID
const TenantIDKey ctxKey = "tenant_id"

// TenantScope returns a GORM scope that constrains tenant-scoped queries
// to the tenant carried in the request context. Tenant IDs are explicit
// in request paths; when the X-Tenant-ID header is also present this
// scope guarantees the two cannot disagree. Without a tenant in context
// the scope is a no-op.
func TenantScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		tenantID, ok := ctx.Value(TenantIDKey).(uuid.UUID)
		if !ok || tenantID == uuid.Nil {
			return db
		}
		return db.Where("tenant_id = ?", tenantID)
	}
}

// WithTenant adds tenant ID to context
func WithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, TenantIDKey, tenantID)
}

// GetTenantID extracts tenant ID from context
func GetTenantID(ctx context.Context) (uuid.UUID, bool) {
	tenantID, ok := ctx.Value(TenantIDKey).(uuid.UUID)
	return tenantID, ok
}
