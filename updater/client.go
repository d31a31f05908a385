package updater

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"jabberwocky238/jwddns/types"
)

// ClientConfig holds configuration for the update HTTP client.
type ClientConfig struct {
	Timeout   time.Duration // Per-request timeout, covering dial, TLS and response
	UserAgent string        // User-Agent header sent with every request
}

// DefaultClientConfig returns a ClientConfig with sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:   5 * time.Second,
		UserAgent: "jwddns",
	}
}

// Client issues update requests with the connection forced onto a
// single address family. It keeps one http.Client per family so that
// a v6 failure can never influence a v4 request, and vice versa.
type Client struct {
	config  ClientConfig
	clients map[types.Family]*http.Client
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	return &Client{
		config: cfg,
		clients: map[types.Family]*http.Client{
			types.FamilyIPv4: newFamilyClient(types.FamilyIPv4, cfg.Timeout),
			types.FamilyIPv6: newFamilyClient(types.FamilyIPv6, cfg.Timeout),
		},
	}
}

// newFamilyClient builds an http.Client whose dialer only uses the
// given address family. Name resolution and connection both happen on
// the forced network; there is no fallback to the other family.
func newFamilyClient(family types.Family, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: timeout}
	network := family.Network()
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, addr string) (net.Conn, error) {
				return dialer.DialContext(ctx, network, addr)
			},
		},
	}
}

// Update performs a single GET of the update URL bound to the given
// address family and returns the classified outcome. Redirects are
// followed; classification applies to the final response. No retries
// are attempted.
func (c *Client) Update(ctx context.Context, url string, family types.Family) types.RequestOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Classify(0, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.clients[family].Do(req)
	if err != nil {
		return Classify(0, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused within the run.
	io.Copy(io.Discard, resp.Body)

	return Classify(resp.StatusCode, nil)
}
