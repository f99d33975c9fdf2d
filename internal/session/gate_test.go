package session

import (
	"testing"

	"flowledger_backend/platform/apperr"
)

func strPtr(s string) *string { return &s }

func claimsWithRole(role string) *Claims {
	return &Claims{
		Organization: &Organization{ID: "org_1", Role: strPtr(role), Slug: strPtr("acme")},
	}
}

func TestRequireRoleAllowsAdminWithDefaultSet(t *testing.T) {
	role, err := RequireRole(claimsWithRole("admin"))
	if err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
	if role != "admin" {
		t.Fatalf("expected resolved role admin, got %q", role)
	}
}

func TestRequireRoleAllowsSuperAdminWithDefaultSet(t *testing.T) {
	role, err := RequireRole(claimsWithRole("super_admin"))
	if err != nil {
		t.Fatalf("expected super_admin to pass, got %v", err)
	}
	if role != "super_admin" {
		t.Fatalf("expected resolved role super_admin, got %q", role)
	}
}

func TestRequireRoleNilClaimsIsUnauthorized(t *testing.T) {
	_, err := RequireRole(nil)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for nil claims, got %v", err)
	}
}

func TestRequireRoleViewerIsForbidden(t *testing.T) {
	_, err := RequireRole(claimsWithRole("viewer"))
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden for viewer, got %v", err)
	}
}

func TestRequireRoleMissingOrganizationIsForbidden(t *testing.T) {
	_, err := RequireRole(&Claims{FirstName: strPtr("Jane")})
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden when no organization claim, got %v", err)
	}
}

func TestRequireRoleMissingRoleFoldsIntoForbidden(t *testing.T) {
	claims := &Claims{Organization: &Organization{ID: "org_1"}}

	_, err := RequireRole(claims)
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden when role field absent, got %v", err)
	}
}

func TestRequireRoleExplicitSet(t *testing.T) {
	role, err := RequireRole(claimsWithRole("viewer"), "viewer", "admin")
	if err != nil {
		t.Fatalf("expected viewer to pass with explicit set, got %v", err)
	}
	if role != "viewer" {
		t.Fatalf("expected resolved role viewer, got %q", role)
	}

	if _, err := RequireRole(claimsWithRole("admin"), "owner"); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden when role not in explicit set, got %v", err)
	}
}

func TestOrganizationAccessorsTreatAbsenceAsUnknown(t *testing.T) {
	var nilClaims *Claims
	if _, ok := nilClaims.OrganizationRole(); ok {
		t.Fatal("nil claims should report role unknown")
	}

	claims := &Claims{Organization: &Organization{ID: "org_1"}}
	if _, ok := claims.OrganizationSlug(); ok {
		t.Fatal("missing slug should report unknown")
	}
	if id, ok := claims.OrganizationID(); !ok || id != "org_1" {
		t.Fatalf("expected organization id org_1, got %q ok=%v", id, ok)
	}
}
