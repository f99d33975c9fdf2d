package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flowledger_backend/platform/apperr"
	"flowledger_backend/platform/config"
)

const msgDirectoryUnavailable = "identity directory unavailable"

// Client is an HTTP client for the identity provider's directory API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new directory client from configuration. The configured
// timeout doubles as the call deadline; expiry surfaces as unavailable, the
// same as any other transport failure.
func NewClient(cfg config.DirectoryConfig) *Client {
	timeout := cfg.GetDirectoryTimeout()
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.GetDirectoryAPIURL(), "/"),
		apiKey:     cfg.GetDirectoryAPIKey(),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// membershipListResponse mirrors the provider's wire format: a data envelope
// of membership records with a nested organization object.
type membershipListResponse struct {
	Data []struct {
		Role         string `json:"role"`
		Organization struct {
			ID       string  `json:"id"`
			Name     string  `json:"name"`
			Slug     *string `json:"slug"`
			ImageURL *string `json:"image_url"`
		} `json:"organization"`
	} `json:"data"`
	TotalCount int `json:"total_count"`
}

// ListMemberships fetches the user's organization memberships from the
// identity provider. Order follows whatever the provider returns.
func (c *Client) ListMemberships(ctx context.Context, userID string) ([]Membership, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s/organization_memberships", c.baseURL, url.PathEscape(userID))

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, msgDirectoryUnavailable, err).WithOp("directory.ListMemberships")
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, msgDirectoryUnavailable, err).WithOp("directory.ListMemberships")
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		err := fmt.Errorf("directory returned status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
		return nil, apperr.Wrap(apperr.KindUnavailable, msgDirectoryUnavailable, err).WithOp("directory.ListMemberships")
	}

	var decoded membershipListResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, msgDirectoryUnavailable, err).WithOp("directory.ListMemberships")
	}

	memberships := make([]Membership, 0, len(decoded.Data))
	for _, record := range decoded.Data {
		memberships = append(memberships, Membership{
			OrganizationID:       record.Organization.ID,
			OrganizationName:     record.Organization.Name,
			OrganizationSlug:     record.Organization.Slug,
			OrganizationImageURL: record.Organization.ImageURL,
			Role:                 record.Role,
		})
	}

	return memberships, nil
}

var _ Service = (*Client)(nil)
