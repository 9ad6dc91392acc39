package middleware

import (
	"stayfront/upstream"

	"github.com/gin-gonic/gin"
)

// TenantResolutionMiddleware resolves the tenant domain for the request:
// the configured override wins, otherwise the request host identifies the
// tenant. The resolved domain rides on the request context so every
// upstream call (and its vault metadata) sees the same value.
func TenantResolutionMiddleware(configuredDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		domain := configuredDomain
		if domain == "" {
			domain = c.Request.Host
		}
		ctx := upstream.WithTenantDomain(c.Request.Context(), domain)
		c.Request = c.Request.WithContext(ctx)
		c.Set("tenantDomain", domain)
		c.Next()
	}
}
