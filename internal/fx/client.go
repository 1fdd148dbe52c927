package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/kakeibo/internal/model"
)

const (
	// DefaultBaseURL is the Frankfurter API root.
	DefaultBaseURL = "https://api.frankfurter.dev/v1"

	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrBadStatus indicates a non-2xx response from the FX source.
	ErrBadStatus = errors.New("fx: unexpected response status")
	// ErrIncomplete indicates the source answered without all required
	// rates. Snapshots are all-or-nothing; a partial one is never kept.
	ErrIncomplete = errors.New("fx: incomplete rate set in response")
)

// Client fetches rate snapshots from the Frankfurter API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

// NewClient creates a client for the given API root. An empty baseURL
// selects the default public endpoint.
func NewClient(baseURL string, log *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logrus.New()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     log,
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// FetchLatest requests today's reference-based quotes for every supported
// non-reference currency and returns a complete snapshot. Any failure
// (network, status, parse, missing rate) returns an error so the caller
// keeps its previous snapshot untouched.
func (c *Client) FetchLatest(ctx context.Context) (model.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	q := url.Values{}
	q.Set("base", string(model.Reference))
	q.Set("symbols", fmt.Sprintf("%s,%s", model.BRL, model.USD))
	reqURL := c.baseURL + "/latest?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fx: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fx: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Snapshot{}, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("fx: reading response: %w", err)
	}

	var raw latestResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return model.Snapshot{}, fmt.Errorf("fx: parsing response: %w", err)
	}

	snap := model.Snapshot{
		Base:      model.Reference,
		Date:      raw.Date,
		FetchedAt: time.Now(),
	}
	if snap.Date == "" {
		snap.Date = model.TodayISO()
	}
	if v, ok := raw.Rates[string(model.BRL)]; ok && v > 0 {
		snap.BRL = &v
	}
	if v, ok := raw.Rates[string(model.USD)]; ok && v > 0 {
		snap.USD = &v
	}
	if !snap.Complete() {
		return model.Snapshot{}, ErrIncomplete
	}

	c.log.WithFields(logrus.Fields{
		"date": snap.Date,
		"brl":  *snap.BRL,
		"usd":  *snap.USD,
	}).Debug("fetched fx snapshot")

	return snap, nil
}
