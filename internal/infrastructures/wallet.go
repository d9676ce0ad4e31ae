package infrastructures

import (
	"fmt"
	"net/http"
	"time"
)

// WalletClient talks to the external wallet-pass service that mirrors a
// customer's points balance on their phone. Calls to it are fire-and-forget
// from the core's perspective.
type WalletClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

func NewWalletClient() *WalletClient {
	return &WalletClient{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: Config.WALLET_BASE_URL,
	}
}

// GetFullURL constructs the full URL for an endpoint
func (c *WalletClient) GetFullURL(endpoint string) string {
	return fmt.Sprintf("%s%s", c.BaseURL, endpoint)
}
