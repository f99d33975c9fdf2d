package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type testSessionConfig struct{ secret string }

func (c testSessionConfig) GetSessionJWTSecret() string { return c.secret }

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func performRequest(cfg testSessionConfig, authHeader string) (*httptest.ResponseRecorder, *Claims, string) {
	gin.SetMode(gin.TestMode)

	var gotClaims *Claims
	var gotUserID string

	router := gin.New()
	router.GET("/probe", Required(cfg), func(c *gin.Context) {
		gotClaims = ClaimsFromContext(c)
		gotUserID, _ = UserIDFromContext(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(rec, req)

	return rec, gotClaims, gotUserID
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	rec, _, _ := performRequest(testSessionConfig{secret: "s3cret"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRequiredRejectsWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{"sub": "user_1"})

	rec, _, _ := performRequest(testSessionConfig{secret: "s3cret"}, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong signature, got %d", rec.Code)
	}
}

func TestRequiredRejectsMissingSubject(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"org_id": "org_1"})

	rec, _, _ := performRequest(testSessionConfig{secret: "s3cret"}, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for token without subject, got %d", rec.Code)
	}
}

func TestRequiredMaterializesClaims(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{
		"sub":        "user_1",
		"first_name": "Jane",
		"org_id":     "org_1",
		"org_role":   "admin",
		"org_slug":   "acme",
		"org_name":   "Acme Estates",
	})

	rec, claims, userID := performRequest(testSessionConfig{secret: "s3cret"}, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if userID != "user_1" {
		t.Fatalf("expected user_1, got %q", userID)
	}
	if claims == nil || claims.Organization == nil {
		t.Fatal("expected organization claims to be set")
	}
	if claims.Organization.ID != "org_1" {
		t.Fatalf("expected org_1, got %q", claims.Organization.ID)
	}
	if role, ok := claims.OrganizationRole(); !ok || role != "admin" {
		t.Fatalf("expected role admin, got %q ok=%v", role, ok)
	}
	if slug, ok := claims.OrganizationSlug(); !ok || slug != "acme" {
		t.Fatalf("expected slug acme, got %q ok=%v", slug, ok)
	}
	if claims.FirstName == nil || *claims.FirstName != "Jane" {
		t.Fatal("expected firstName Jane")
	}
}

func TestRequiredTokenWithoutOrganization(t *testing.T) {
	token := signToken(t, "s3cret", jwt.MapClaims{"sub": "user_2"})

	rec, claims, _ := performRequest(testSessionConfig{secret: "s3cret"}, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if claims == nil {
		t.Fatal("expected claims to be set")
	}
	if claims.Organization != nil {
		t.Fatal("expected no organization for personal session")
	}
}
