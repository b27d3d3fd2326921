package middleware

import (
	"net/http"
	"strings"

	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type TokenParser interface {
	Parse(raw string) (*domain.Principal, error)
}

// Authenticate resolves the bearer token into a principal. Requests without
// an Authorization header pass through as anonymous; the services decide
// whether that is enough.
func Authenticate(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "malformed authorization header"})
			return
		}

		p, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.Set("error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
