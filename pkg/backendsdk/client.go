package backendsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the public endpoints and opens origins.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new backend client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Origin is an authenticated handle on one origin. All account and data
// operations go through it.
type Origin struct {
	client *SDKClient
	id     string
	token  string
}

// MintOrigin creates a fresh, empty origin.
func (c *SDKClient) MintOrigin(ctx context.Context, label string) (*Origin, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/origins", "", MintOriginRequest{Label: label})
	if err != nil {
		return nil, err
	}

	var out OriginResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}

	return &Origin{client: c, id: out.OriginID, token: out.Token}, nil
}

// ResumeOrigin wraps a previously minted origin token.
func (c *SDKClient) ResumeOrigin(token string) *Origin {
	return &Origin{client: c, token: token}
}

// ID is the origin id, empty for resumed origins.
func (o *Origin) ID() string { return o.id }

// Token is the bearer token to persist for ResumeOrigin.
func (o *Origin) Token() string { return o.token }
