package repository

import (
	"strings"
	"testing"
)

func TestListContactsQueryIsTenantScoped(t *testing.T) {
	query := strings.ToLower(listContactsQuery)

	requiredFragments := []string{
		"from contacts",
		"where organization_id = $1",
	}

	for _, fragment := range requiredFragments {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected tenant-scoped query fragment %q to be present", fragment)
		}
	}
}

func TestDeleteContactQueryIsTenantScoped(t *testing.T) {
	query := strings.ToLower(deleteContactQuery)

	if !strings.Contains(query, "and organization_id = $2") {
		t.Fatal("delete contact query must be scoped to the owning organization")
	}
}

func TestInsertContactQuerySetsOrganization(t *testing.T) {
	query := strings.ToLower(insertContactQuery)

	if !strings.Contains(query, "organization_id") {
		t.Fatal("insert contact query must persist the owning organization")
	}
}
