// Package billing delivers invoices for new bookings to the external bill
// service. Delivery is best effort: a failed or rejected call is logged and
// dropped, it never affects the booking that produced it.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const serviceName = "accommodation"

type Bill struct {
	CustomerID         string `json:"customerId"`
	ServiceName        string `json:"serviceName"`
	ServiceReferenceID string `json:"serviceReferenceId"`
	Description        string `json:"description"`
	Amount             int    `json:"amount"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateBill(ctx context.Context, bill Bill) error {
	bill.ServiceName = serviceName

	body, err := json.Marshal(bill)
	if err != nil {
		return fmt.Errorf("marshal bill: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bills", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build bill request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send bill: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("bill service returned %d", resp.StatusCode)
	}
	return nil
}
