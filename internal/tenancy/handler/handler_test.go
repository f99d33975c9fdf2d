package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flowledger_backend/internal/directory"
	"flowledger_backend/internal/session"
	"flowledger_backend/internal/tenancy/service"
	"flowledger_backend/platform/apperr"
	"flowledger_backend/platform/logger"
	"flowledger_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type stubDirectory struct {
	memberships []directory.Membership
	err         error
}

func (s *stubDirectory) ListMemberships(ctx context.Context, userID string) ([]directory.Membership, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.memberships, nil
}

type stubTenantURLConfig struct{}

func (stubTenantURLConfig) IsDevelopment() bool      { return false }
func (stubTenantURLConfig) GetRootDomain() string    { return "example.com" }
func (stubTenantURLConfig) GetDashboardPath() string { return "/dashboard" }

func slugPtr(s string) *string { return &s }

func callbackLocation(t *testing.T, dir directory.Service) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New("test")
	h := New(service.New(dir, stubTenantURLConfig{}, log), validator.New(), log)

	router := gin.New()
	router.GET("/auth/callback", func(c *gin.Context) {
		c.Set(session.ContextUserIDKey, "user_1")
	}, h.AuthCallback)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/callback", nil)
	router.ServeHTTP(rec, req)

	return rec.Code, rec.Header().Get("Location")
}

func TestAuthCallbackZeroMembershipsRedirectsToOnboarding(t *testing.T) {
	code, location := callbackLocation(t, &stubDirectory{})
	if code != http.StatusFound {
		t.Fatalf("expected 302, got %d", code)
	}
	if location != "/onboarding/create-organization" {
		t.Fatalf("expected onboarding redirect, got %q", location)
	}
}

func TestAuthCallbackSingleMembershipRedirectsToTenant(t *testing.T) {
	dir := &stubDirectory{memberships: []directory.Membership{
		{OrganizationID: "org_1", OrganizationName: "Acme", OrganizationSlug: slugPtr("acme"), Role: "admin"},
	}}

	code, location := callbackLocation(t, dir)
	if code != http.StatusFound {
		t.Fatalf("expected 302, got %d", code)
	}
	if location != "https://acme.example.com/dashboard" {
		t.Fatalf("expected tenant redirect, got %q", location)
	}
}

func TestAuthCallbackMultipleMembershipsRedirectsToPicker(t *testing.T) {
	dir := &stubDirectory{memberships: []directory.Membership{
		{OrganizationID: "org_1", OrganizationSlug: slugPtr("acme"), Role: "admin"},
		{OrganizationID: "org_2", OrganizationSlug: slugPtr("beta"), Role: "member"},
	}}

	code, location := callbackLocation(t, dir)
	if code != http.StatusFound {
		t.Fatalf("expected 302, got %d", code)
	}
	if location != "/select-organization" {
		t.Fatalf("expected organization picker redirect, got %q", location)
	}
}

func TestAuthCallbackDirectoryFailureRedirectsToSignIn(t *testing.T) {
	dir := &stubDirectory{err: apperr.Unavailable("identity directory unavailable")}

	code, location := callbackLocation(t, dir)
	if code != http.StatusFound {
		t.Fatalf("expected 302, got %d", code)
	}
	// An outage must never look like a fresh account or land in a tenant.
	if location != "/sign-in" {
		t.Fatalf("expected sign-in redirect on directory failure, got %q", location)
	}
}

func TestAuthCallbackWithoutSessionRedirectsToSignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := logger.New("test")
	h := New(service.New(&stubDirectory{}, stubTenantURLConfig{}, log), validator.New(), log)

	router := gin.New()
	router.GET("/auth/callback", h.AuthCallback)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/callback", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/sign-in" {
		t.Fatalf("expected sign-in redirect without session, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
