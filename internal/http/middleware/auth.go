package middleware

import (
	"errors"
	"net/http"

	"hrgsms-backend/internal/auth"
	"hrgsms-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// TokenVerifier turns a raw bearer token into a principal.
type TokenVerifier interface {
	Verify(raw string) (domain.Principal, error)
}

// RequireRoles authenticates the bearer token and admits only the listed roles.
// Missing or invalid credentials end in 401, a role outside allowed in 403.
func RequireRoles(v TokenVerifier, allowed ...domain.Role) gin.HandlerFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(c *gin.Context) {
		raw, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthenticated(c, "Not authenticated")
			return
		}
		if v == nil {
			unauthenticated(c, "Could not validate credentials")
			return
		}
		p, err := v.Verify(raw)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				unauthenticated(c, "Not authenticated")
				return
			}
			unauthenticated(c, "Could not validate credentials")
			return
		}
		c.Set(principalKey, p)

		if _, ok := set[p.Role]; !ok {
			abortWithDetail(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated caller, if the gate has run.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	if c == nil {
		return domain.Principal{}, false
	}
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}

func unauthenticated(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	abortWithDetail(c, http.StatusUnauthorized, detail)
}
