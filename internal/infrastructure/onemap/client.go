package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/facility-directory/internal/config"
	"github.com/facility-directory/internal/domain"
	"github.com/facility-directory/internal/domain/repository"
	"go.uber.org/zap"
)

// The provider marks absent optional fields with the literal string "NIL".
const nilMarker = "NIL"

type searchResponse struct {
	Found         int            `json:"found"`
	TotalNumPages int            `json:"totalNumPages"`
	PageNum       int            `json:"pageNum"`
	Results       []searchResult `json:"results"`
}

type searchResult struct {
	SearchVal string `json:"SEARCHVAL"`
	BlkNo     string `json:"BLK_NO"`
	RoadName  string `json:"ROAD_NAME"`
	Building  string `json:"BUILDING"`
	Address   string `json:"ADDRESS"`
	Postal    string `json:"POSTAL"`
	Latitude  string `json:"LATITUDE"`
	Longitude string `json:"LONGITUDE"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient builds the address-search geocoder client.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *client) SearchAddress(ctx context.Context, query string, limit int) ([]domain.Address, error) {
	if query == "" {
		return nil, fmt.Errorf("search query cannot be empty")
	}

	params := url.Values{}
	params.Set("searchVal", query)
	params.Set("returnGeom", "Y")
	params.Set("getAddrDetails", "Y")
	params.Set("pageNum", "1")

	endpoint := fmt.Sprintf("%s/api/common/elastic/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geocoder request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read geocoder response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoder returned non-200",
			zap.String("query", query),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	addresses := make([]domain.Address, 0, len(parsed.Results))
	for _, res := range parsed.Results {
		addr, err := mapResult(res)
		if err != nil {
			c.logger.Warn("Skipping unparsable geocoder result",
				zap.String("search_val", res.SearchVal),
				zap.Error(err),
			)
			continue
		}
		addresses = append(addresses, addr)
		if limit > 0 && len(addresses) >= limit {
			break
		}
	}

	return addresses, nil
}

func mapResult(res searchResult) (domain.Address, error) {
	lat, err := strconv.ParseFloat(res.Latitude, 64)
	if err != nil {
		return domain.Address{}, fmt.Errorf("bad latitude %q: %w", res.Latitude, err)
	}
	lon, err := strconv.ParseFloat(res.Longitude, 64)
	if err != nil {
		return domain.Address{}, fmt.Errorf("bad longitude %q: %w", res.Longitude, err)
	}

	addr := domain.Address{
		Road:       res.RoadName,
		Address:    res.Address,
		PostalCode: res.Postal,
		Latitude:   lat,
		Longitude:  lon,
	}
	if res.Building != nilMarker && res.Building != "" {
		b := res.Building
		addr.Building = &b
	}
	if res.BlkNo != nilMarker && res.BlkNo != "" {
		blk := res.BlkNo
		addr.Block = &blk
	}
	return addr, nil
}
