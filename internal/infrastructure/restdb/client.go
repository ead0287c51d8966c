package restdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/facility-directory/internal/config"
	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/domain/repository"
	"go.uber.org/zap"
)

// Client reads listing data from the managed database's REST surface
// (PostgREST dialect: GET /rest/v1/<table>?select=*). It is the preferred
// read path; any errored or empty subset is re-sourced from the relational
// gateway by the listing use case.
type Client struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	logger     *zap.Logger
}

func NewClient(cfg *config.RestDBConfig, logger *zap.Logger) repository.ListingReader {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.URL,
		anonKey: cfg.AnonKey,
		logger:  logger,
	}
}

func (c *Client) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var rows []domain.Location
	if err := c.selectAll(ctx, "locations", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	var rows []domain.Facility
	if err := c.selectAll(ctx, "facilities", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ListFacilityTypes(ctx context.Context) ([]domain.FacilityType, error) {
	var rows []domain.FacilityType
	if err := c.selectAll(ctx, "facility_types", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) selectAll(ctx context.Context, table string, dest interface{}) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, url.Values{"select": {"*"}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Managed read API request failed",
			zap.String("table", table),
			zap.Error(err),
		)
		return fmt.Errorf("read api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Managed read API returned non-200",
			zap.String("table", table),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("read api status %d for %s", resp.StatusCode, table)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode %s rows: %w", table, err)
	}
	return nil
}
