// Package fidusapi is the client for the FIDUS backend REST API. The backend
// owns all fund accounting; this client only reads the portfolio summary that
// seeds the committee's local snapshot.
package fidusapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	committee "github.com/chavapalmarubin-lab/fidus-committee"
)

// summaryPath is the fixed portfolio summary endpoint, GET with no
// parameters.
const summaryPath = "/api/portfolio/summary"

// aumCurrency is the currency the backend reports AUM in. The summary body
// carries a bare number.
const aumCurrency = "USD"

// Client talks to one FIDUS backend deployment.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client whose responses are disk-cached with a daily expiry,
// so repeated fetches within a day do not hit the backend again.
func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: newDailyCachingClient()}
}

// NewDirect returns a client that bypasses the disk cache.
func NewDirect(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: new(http.Client)}
}

// Summary is the decoded portfolio summary.
type Summary struct {
	Allocation committee.AllocationSplit
	Weekly     []committee.WeeklyReturnRow
}

// Summary fetches and decodes the portfolio summary. Any failure (network,
// non-2xx, body that is not JSON) is returned as an error so the caller can
// fall back to its last-known snapshot. A body that is valid JSON but only
// partially shaped still yields what it carries: each field is extracted
// independently and missing values default to zero.
func (c *Client) Summary() (*Summary, error) {
	var jobj any
	if err := jwget(c.http, c.baseURL+summaryPath, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch portfolio summary: %w", err)
	}
	return decodeSummary(jobj), nil
}

// decodeSummary extracts the summary fields from a decoded JSON body.
func decodeSummary(jobj any) *Summary {
	s := &Summary{
		Allocation: committee.AllocationSplit{
			AUM:     committee.M(number(jobj, "$.aum"), aumCurrency),
			Core:    committee.Percent(number(jobj, "$.allocation.CORE")),
			Balance: committee.Percent(number(jobj, "$.allocation.BALANCE")),
			Dynamic: committee.Percent(number(jobj, "$.allocation.DYNAMIC")),
		},
	}

	weekly, err := jsonpath.Get("$.weekly_performance", jobj)
	if err != nil {
		return s
	}
	items, ok := weekly.([]any)
	if !ok {
		return s
	}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := obj["week"].(string)
		if strings.TrimSpace(label) == "" {
			continue
		}
		s.Weekly = append(s.Weekly, committee.WeeklyReturnRow{
			Week:    label,
			Core:    committee.CoerceValue(obj["CORE"]),
			Balance: committee.CoerceValue(obj["BALANCE"]),
			Dynamic: committee.CoerceValue(obj["DYNAMIC"]),
		})
	}
	return s
}

// number extracts a numeric field by jsonpath, coercing strings and
// defaulting to 0 when the path is absent or not a number.
func number(jobj any, path string) float64 {
	v, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	return float64(committee.CoerceValue(v))
}
