package routing

import (
	"reflect"
	"testing"

	"flowledger_backend/internal/directory"
)

func slugPtr(s string) *string { return &s }

func membership(id, name string, slug *string) directory.Membership {
	return directory.Membership{
		OrganizationID:   id,
		OrganizationName: name,
		OrganizationSlug: slug,
		Role:             "admin",
	}
}

func TestDecideZeroMembershipsIsOnboarding(t *testing.T) {
	for _, development := range []bool{true, false} {
		decision := Decide(nil, development, "example.com", "/dashboard")
		if decision.Kind != KindOnboarding {
			t.Fatalf("development=%v: expected onboarding for zero memberships, got %v", development, decision.Kind)
		}
		if decision.TenantURL != "" || decision.Options != nil {
			t.Fatalf("onboarding decision should carry no URL or options, got %+v", decision)
		}
	}
}

func TestDecideSingleMembershipDevelopmentURL(t *testing.T) {
	memberships := []directory.Membership{membership("org_1", "Acme", slugPtr("acme"))}

	decision := Decide(memberships, true, "example.com", "/dashboard")
	if decision.Kind != KindTenant {
		t.Fatalf("expected tenant decision, got %v", decision.Kind)
	}
	if decision.TenantURL != "/dashboard?org=acme" {
		t.Fatalf("expected /dashboard?org=acme, got %q", decision.TenantURL)
	}
}

func TestDecideSingleMembershipProductionURL(t *testing.T) {
	memberships := []directory.Membership{membership("org_1", "Acme", slugPtr("acme"))}

	decision := Decide(memberships, false, "example.com", "/dashboard")
	if decision.TenantURL != "https://acme.example.com/dashboard" {
		t.Fatalf("expected https://acme.example.com/dashboard, got %q", decision.TenantURL)
	}
}

func TestDecideSingleMembershipWithoutSlugKeepsPath(t *testing.T) {
	memberships := []directory.Membership{membership("org_1", "Acme", nil)}

	for _, development := range []bool{true, false} {
		decision := Decide(memberships, development, "example.com", "/dashboard")
		if decision.Kind != KindTenant {
			t.Fatalf("expected tenant decision, got %v", decision.Kind)
		}
		if decision.TenantURL != "/dashboard" {
			t.Fatalf("expected unchanged path for missing slug, got %q", decision.TenantURL)
		}
	}
}

func TestDecideMultipleMembershipsIsSelection(t *testing.T) {
	memberships := []directory.Membership{
		membership("org_b", "Beta", slugPtr("beta")),
		membership("org_a", "Acme", slugPtr("acme")),
		membership("org_c", "Gamma", nil),
	}

	decision := Decide(memberships, false, "example.com", "/dashboard")
	if decision.Kind != KindSelection {
		t.Fatalf("expected selection decision, got %v", decision.Kind)
	}
	if !reflect.DeepEqual(decision.Options, memberships) {
		t.Fatalf("selection options must be the input sequence order- and count-preserved, got %+v", decision.Options)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	memberships := []directory.Membership{membership("org_1", "Acme", slugPtr("acme"))}

	first := Decide(memberships, false, "example.com", "/dashboard")
	second := Decide(memberships, false, "example.com", "/dashboard")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical decisions: %+v vs %+v", first, second)
	}
}

func TestBuildTenantURLDefaultsPath(t *testing.T) {
	if got := BuildTenantURL(slugPtr("acme"), "", true, "example.com"); got != "/dashboard?org=acme" {
		t.Fatalf("expected default dashboard path, got %q", got)
	}
}

func TestBuildTenantURLInjectiveInSlug(t *testing.T) {
	slugs := []string{"acme", "beta", "acme-2"}

	for _, development := range []bool{true, false} {
		seen := make(map[string]string)
		for _, slug := range slugs {
			url := BuildTenantURL(slugPtr(slug), "/dashboard", development, "example.com")
			if prior, collides := seen[url]; collides {
				t.Fatalf("development=%v: slugs %q and %q collide on %q", development, prior, slug, url)
			}
			seen[url] = slug
		}
	}
}

func TestBuildTenantURLCustomPath(t *testing.T) {
	if got := BuildTenantURL(slugPtr("acme"), "/contacts", false, "example.com"); got != "https://acme.example.com/contacts" {
		t.Fatalf("expected custom path preserved, got %q", got)
	}
	if got := BuildTenantURL(nil, "/contacts", false, "example.com"); got != "/contacts" {
		t.Fatalf("expected path unchanged without slug, got %q", got)
	}
}
