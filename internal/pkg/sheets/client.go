package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/rrservice/service-dashboard-go/internal/domain/ticket"
	"golang.org/x/oauth2/google"
)

const (
	readScope = "https://www.googleapis.com/auth/spreadsheets.readonly"
	apiBase   = "https://sheets.googleapis.com/v4/spreadsheets"
)

// Client reads the service worksheet through the Sheets values API using
// a service-account credential. It implements ticket.Source.
type Client struct {
	httpClient *http.Client
	sheetID    string
	worksheet  string
}

func NewClient(ctx context.Context, credentialsFile, sheetID, worksheet string) (*Client, error) {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(credentials, readScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	return &Client{
		httpClient: conf.Client(ctx),
		sheetID:    sheetID,
		worksheet:  worksheet,
	}, nil
}

// valuesResponse is the Sheets API values payload. Cells arrive as a
// mixed-type matrix; everything is coerced to strings before the
// derivation layer sees it.
type valuesResponse struct {
	Values [][]interface{} `json:"values"`
}

// Fetch implements ticket.Source. Transport failures surface as
// ticket.ErrSourceUnavailable; the derivation layer never retries.
func (c *Client) Fetch(ctx context.Context) (ticket.Extract, error) {
	fetchID := uuid.NewString()
	endpoint := fmt.Sprintf("%s/%s/values/%s", apiBase, url.PathEscape(c.sheetID), url.PathEscape(c.worksheet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ticket.Extract{}, fmt.Errorf("%w: %v", ticket.ErrSourceUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Sheets fetch failed", "fetch_id", fetchID, "error", err)
		return ticket.Extract{}, fmt.Errorf("%w: %v", ticket.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Sheets fetch returned non-OK status", "fetch_id", fetchID, "status", resp.StatusCode)
		return ticket.Extract{}, fmt.Errorf("%w: unexpected status %d", ticket.ErrSourceUnavailable, resp.StatusCode)
	}

	var payload valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ticket.Extract{}, fmt.Errorf("%w: %v", ticket.ErrSourceUnavailable, err)
	}

	extract := toExtract(payload.Values)
	slog.Info("Sheets fetch completed", "fetch_id", fetchID, "rows", len(extract.Rows))
	return extract, nil
}

// toExtract splits the values matrix into header and data rows.
func toExtract(values [][]interface{}) ticket.Extract {
	if len(values) == 0 {
		return ticket.Extract{}
	}

	extract := ticket.Extract{
		Header: toStrings(values[0]),
		Rows:   make([][]string, 0, len(values)-1),
	}
	for _, row := range values[1:] {
		extract.Rows = append(extract.Rows, toStrings(row))
	}
	return extract
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if s, ok := cell.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(cell)
	}
	return out
}
