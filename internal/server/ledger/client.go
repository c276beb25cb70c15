// Package ledger implements the HTTP client for the external payment
// ledger. The ledger exposes read-only block queries; payment verification
// asks for the transfers of one explicit block at a time.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dpetrovs/heirvault/internal/server/services"
)

type transferDTO struct {
	Destination string `json:"destination"`
	Amount      int64  `json:"amount"`
	Timestamp   int64  `json:"timestamp"`
	Ref         string `json:"ref"`
}

type blockDTO struct {
	Index     uint64        `json:"index"`
	Transfers []transferDTO `json:"transfers"`
}

// Client queries the ledger's JSON API. It satisfies services.Ledger.
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

// BlockTransfers fetches the inbound transfers recorded in block blockIndex.
func (c *Client) BlockTransfers(ctx context.Context, blockIndex uint64) ([]services.Transfer, error) {
	u, err := url.JoinPath(c.baseURL, "blocks", strconv.FormatUint(blockIndex, 10))
	if err != nil {
		return nil, fmt.Errorf("building ledger url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ledger returned status %d", resp.StatusCode)
	}

	var block blockDTO
	if err := json.NewDecoder(resp.Body).Decode(&block); err != nil {
		return nil, fmt.Errorf("decoding ledger block: %w", err)
	}

	transfers := make([]services.Transfer, 0, len(block.Transfers))
	for _, t := range block.Transfers {
		transfers = append(transfers, services.Transfer{
			Destination: t.Destination,
			Amount:      t.Amount,
			Timestamp:   time.Unix(t.Timestamp, 0).UTC(),
			Ref:         t.Ref,
		})
	}
	return transfers, nil
}
