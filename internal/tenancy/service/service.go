// Package service implements tenant resolution: fetching memberships from the
// identity directory and turning them into routing decisions.
package service

import (
	"context"

	"flowledger_backend/internal/directory"
	"flowledger_backend/internal/tenancy/routing"
	"flowledger_backend/platform/apperr"
	"flowledger_backend/platform/config"
	"flowledger_backend/platform/logger"
)

type Service struct {
	dir directory.Service
	cfg config.TenantURLConfig
	log *logger.Logger
}

func New(dir directory.Service, cfg config.TenantURLConfig, log *logger.Logger) *Service {
	return &Service{dir: dir, cfg: cfg, log: log}
}

// ListMemberships returns the caller's memberships in provider order.
func (s *Service) ListMemberships(ctx context.Context, userID string) ([]directory.Membership, error) {
	memberships, err := s.dir.ListMemberships(ctx, userID)
	if err != nil {
		s.log.DirectoryError("list_memberships", err)
		return nil, err
	}
	return memberships, nil
}

// ResolveDestination fetches the user's memberships and classifies them into
// a routing decision. A directory failure propagates unchanged so the caller
// can fall back to re-authentication instead of guessing: an empty list must
// never be synthesized here.
func (s *Service) ResolveDestination(ctx context.Context, userID string) (routing.Decision, error) {
	memberships, err := s.dir.ListMemberships(ctx, userID)
	if err != nil {
		s.log.DirectoryError("resolve_destination", err)
		return routing.Decision{}, err
	}

	decision := routing.Decide(memberships, s.cfg.IsDevelopment(), s.cfg.GetRootDomain(), s.cfg.GetDashboardPath())
	return decision, nil
}

// SelectOrganization resolves the tenant URL for an explicit organization
// pick. Membership is re-verified against the directory; the client's word
// that it belongs to the organization is never trusted.
func (s *Service) SelectOrganization(ctx context.Context, userID, organizationID string) (string, error) {
	memberships, err := s.dir.ListMemberships(ctx, userID)
	if err != nil {
		s.log.DirectoryError("select_organization", err)
		return "", err
	}

	for _, m := range memberships {
		if m.OrganizationID == organizationID {
			return routing.BuildTenantURL(m.OrganizationSlug, s.cfg.GetDashboardPath(), s.cfg.IsDevelopment(), s.cfg.GetRootDomain()), nil
		}
	}

	return "", apperr.Forbidden("not a member of this organization").WithOp("tenancy.SelectOrganization")
}
