package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/qassab/loyalty-core/internal/app/models"
	"github.com/qassab/loyalty-core/internal/infrastructures"
	"github.com/sirupsen/logrus"
)

// Notifier is the hook the core fires after a committed balance change.
// Implementations deliver best-effort: a failure here is logged and dropped,
// never rolled back into the ledger.
type Notifier interface {
	PointsAdjusted(customerID uuid.UUID, delta, newBalance int64, description string)
	VoucherIssued(customerID uuid.UUID, voucher *models.Voucher, newBalance int64)
}

// WebhookNotifier posts balance changes to the notification webhook (which
// fans out to email/WhatsApp) and pushes the new balance to the customer's
// wallet pass.
type WebhookNotifier struct {
	client     *http.Client
	webhookURL string
	wallet     *infrastructures.WalletClient
}

func NewWebhookNotifier(wallet *infrastructures.WalletClient) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		webhookURL: infrastructures.Config.NOTIFY_WEBHOOK_URL,
		wallet:     wallet,
	}
}

func (n *WebhookNotifier) PointsAdjusted(customerID uuid.UUID, delta, newBalance int64, description string) {
	n.post(map[string]interface{}{
		"event":       "points.adjusted",
		"customer_id": customerID,
		"delta":       delta,
		"new_balance": newBalance,
		"description": description,
	})
	n.syncWallet(customerID, newBalance)
}

func (n *WebhookNotifier) VoucherIssued(customerID uuid.UUID, voucher *models.Voucher, newBalance int64) {
	n.post(map[string]interface{}{
		"event":        "voucher.issued",
		"customer_id":  customerID,
		"voucher_code": voucher.Code,
		"value":        voucher.Value,
		"currency":     voucher.Currency,
		"expires_at":   voucher.ExpiresAt,
		"new_balance":  newBalance,
	})
	n.syncWallet(customerID, newBalance)
}

func (n *WebhookNotifier) post(payload map[string]interface{}) {
	if n.webhookURL == "" {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logrus.Errorf("notify: failed to marshal payload: %v", err)
		return
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		logrus.Warnf("notify: webhook delivery failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logrus.Warnf("notify: webhook returned status %d", resp.StatusCode)
	}
}

func (n *WebhookNotifier) syncWallet(customerID uuid.UUID, balance int64) {
	if n.wallet == nil || n.wallet.BaseURL == "" {
		return
	}

	body, _ := json.Marshal(map[string]interface{}{
		"points_balance": balance,
	})

	url := n.wallet.GetFullURL(fmt.Sprintf("/customers/%s/balance", customerID))
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		logrus.Errorf("notify: failed to build wallet request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.wallet.HTTPClient.Do(req)
	if err != nil {
		logrus.Warnf("notify: wallet resync failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logrus.Warnf("notify: wallet resync returned status %d", resp.StatusCode)
	}
}
