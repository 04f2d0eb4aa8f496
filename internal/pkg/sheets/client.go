package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to the spreadsheet-backed sync endpoint (an Apps Script
// web app). The endpoint accepts an entry upsert as a plain POST body and
// a {"action":"delete","id":...} body for removals. Retries and CORS are
// the endpoint's problem, not ours.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// EntryPayload is the wire shape of one computed attendance entry. The
// sheet schema predates the single leave tag, so the two booleans are
// kept on the wire and derived from LeaveStatus by the caller.
type EntryPayload struct {
	ID              string          `json:"id,omitempty"`
	Date            string          `json:"date"`
	WorkerID        string          `json:"workerId"`
	CheckIn         string          `json:"checkIn"`
	CheckOut        string          `json:"checkOut"`
	BreakMinutes    int             `json:"breakMinutes"`
	WorkingHours    float64         `json:"workingHours"`
	OTHours         float64         `json:"otHours"`
	OTPay           decimal.Decimal `json:"otPay"`
	IsRejectedLeave bool            `json:"isRejectedLeave"`
	IsApprovedLeave bool            `json:"isApprovedLeave"`
	AdvancePayment  decimal.Decimal `json:"advancePayment"`
	Notes           string          `json:"notes"`
	UpdatedAt       int64           `json:"updatedAt"` // unix millis
}

type apiResult struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// Upsert pushes one entry to the sheet and returns the sheet-side row ID.
func (c *Client) Upsert(ctx context.Context, payload EntryPayload) (string, error) {
	var result apiResult
	if err := c.post(ctx, payload, &result); err != nil {
		return "", err
	}
	if !result.OK {
		return "", fmt.Errorf("sheet upsert rejected: %s", result.Error)
	}
	return result.ID, nil
}

// Delete removes a row by its sheet-side ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	body := map[string]string{"action": "delete", "id": id}
	var result apiResult
	if err := c.post(ctx, body, &result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("sheet delete rejected: %s", result.Error)
	}
	return nil
}

func (c *Client) post(ctx context.Context, body interface{}, result *apiResult) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal sheet request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build sheet request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call sheet endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sheet endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode sheet response: %w", err)
	}

	return nil
}
