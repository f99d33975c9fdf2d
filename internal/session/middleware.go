package session

import (
	"errors"
	"net/http"
	"strings"

	"flowledger_backend/platform/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ContextUserIDKey is the gin context key for the authenticated user ID.
	ContextUserIDKey = "userID"
	// ContextClaimsKey is the gin context key for the session claims.
	ContextClaimsKey = "sessionClaims"

	errMissingToken = "missing token"
	errInvalidToken = "invalid token"
)

// Required returns middleware that verifies the identity provider's session
// token (HMAC-signed JWT) and materialises the session claims into the Gin
// context. Signature and expiry validation is the extent of trust
// establishment; everything inside a valid token is taken as-is.
func Required(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, errMissingToken)
			return
		}

		parsed, err := parseSessionToken(rawToken, cfg)
		if err != nil {
			abortUnauthorized(c, errInvalidToken)
			return
		}

		userID, _ := parsed["sub"].(string)
		if strings.TrimSpace(userID) == "" {
			abortUnauthorized(c, errInvalidToken)
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextClaimsKey, claimsFromToken(parsed))
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID set by Required.
func UserIDFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}

// ClaimsFromContext returns the session claims set by Required. A nil result
// means the request carries no trusted session.
func ClaimsFromContext(c *gin.Context) *Claims {
	value, ok := c.Get(ContextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*Claims)
	return claims
}

func extractBearerToken(authHeader string) (string, bool) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}

	rawToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if rawToken == "" {
		return "", false
	}

	return rawToken, true
}

func parseSessionToken(rawToken string, cfg config.SessionConfig) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.GetSessionJWTSecret()), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New(errInvalidToken)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New(errInvalidToken)
	}

	return claims, nil
}

// claimsFromToken maps the provider's flat token claims onto the session
// claims model. Missing fields stay nil; an org without an id is treated as
// no organization at all.
func claimsFromToken(token jwt.MapClaims) *Claims {
	claims := &Claims{
		FirstName:        optionalString(token["first_name"]),
		OrganizationName: optionalString(token["org_name"]),
		OrganizationLogo: optionalString(token["org_logo"]),
	}

	if orgID := optionalString(token["org_id"]); orgID != nil {
		claims.Organization = &Organization{
			ID:   *orgID,
			Role: optionalString(token["org_role"]),
			Slug: optionalString(token["org_slug"]),
		}
	}

	return claims
}

func optionalString(value interface{}) *string {
	text, ok := value.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return nil
	}
	return &text
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
