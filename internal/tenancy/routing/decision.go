// Package routing contains the tenant routing decision engine: pure functions
// that classify a user's organization memberships and construct tenant-scoped
// URLs. Nothing here performs I/O.
package routing

import (
	"fmt"
	"net/url"

	"flowledger_backend/internal/directory"
)

// DefaultDashboardPath is the target path used when callers pass none.
const DefaultDashboardPath = "/dashboard"

// Kind classifies the routing decision.
type Kind int

const (
	// KindOnboarding routes a user with zero memberships to organization
	// creation; there is no tenant context to land in.
	KindOnboarding Kind = iota
	// KindTenant routes a user with exactly one membership straight to that
	// tenant's dashboard.
	KindTenant
	// KindSelection defers to an explicit user pick: more than one
	// membership is ambiguous and must never be resolved silently.
	KindSelection
)

// Decision is the outcome of classifying a membership list. It is computed
// once per authentication callback and immediately consumed; it has no
// lifecycle beyond the request.
type Decision struct {
	Kind      Kind
	TenantURL string                 // set when Kind == KindTenant
	Options   []directory.Membership // set when Kind == KindSelection, provider order preserved
}

// Decide classifies the membership cardinality and produces the destination.
// It is deterministic and side-effect-free: identical inputs always yield
// identical decisions.
func Decide(memberships []directory.Membership, development bool, baseHost, targetPath string) Decision {
	switch len(memberships) {
	case 0:
		return Decision{Kind: KindOnboarding}
	case 1:
		url := BuildTenantURL(memberships[0].OrganizationSlug, targetPath, development, baseHost)
		return Decision{Kind: KindTenant, TenantURL: url}
	default:
		return Decision{Kind: KindSelection, Options: memberships}
	}
}

// BuildTenantURL computes the tenant-scoped address for a path.
//
// Without a slug the path is returned unchanged: the destination still has to
// be reachable, so a missing slug is degraded, not fatal. In development the
// tenant travels as a query parameter because wildcard subdomains are
// typically unavailable locally; in production it becomes a subdomain of the
// base host.
func BuildTenantURL(slug *string, path string, development bool, baseHost string) string {
	if path == "" {
		path = DefaultDashboardPath
	}

	if slug == nil || *slug == "" {
		return path
	}

	if development {
		return fmt.Sprintf("%s?org=%s", path, url.QueryEscape(*slug))
	}

	return fmt.Sprintf("https://%s.%s%s", *slug, baseHost, path)
}
