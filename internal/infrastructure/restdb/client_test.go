package restdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/facility-directory/internal/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.RestDBConfig{
		URL:            baseURL,
		AnonKey:        "anon-test-key",
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, zap.NewNop()).(*Client)
}

func TestClient_ListLocations(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/locations", r.URL.Path)
			assert.Equal(t, "*", r.URL.Query().Get("select"))
			assert.Equal(t, "anon-test-key", r.Header.Get("apikey"))
			assert.Equal(t, "Bearer anon-test-key", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id": 1, "road": "Orchard Road", "address": "68 Orchard Road", "latitude": 1.3006, "longitude": 103.8451},
				{"id": 2, "building": "VivoCity", "road": "Telok Blangah Road", "address": "1 HarbourFront Walk", "latitude": 1.2644, "longitude": 103.8222}
			]`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		locations, err := client.ListLocations(context.Background())
		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, int64(1), locations[0].ID)
		assert.Equal(t, "68 Orchard Road", locations[0].Address)
		require.NotNil(t, locations[1].Building)
		assert.Equal(t, "VivoCity", *locations[1].Building)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListLocations(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.ListLocations(context.Background())
		assert.Error(t, err)
	})
}

func TestClient_ListFacilities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/facilities", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 7, "location_id": 1, "facility_type_id": 2, "floor": "B1",
			 "has_diaper_changing_station": true, "has_lactation_room": false,
			 "created_by": "user_2abc", "created_at": "2025-04-02T09:00:00Z", "updated_at": "2025-04-02T09:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	facilities, err := client.ListFacilities(context.Background())
	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.Equal(t, int64(1), facilities[0].LocationID)
	assert.True(t, facilities[0].HasDiaperChangingStation)
	assert.Equal(t, "user_2abc", facilities[0].CreatedBy)
}

func TestClient_ListFacilityTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/facility_types", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Lactation Room", "display_order": 2}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	types, err := client.ListFacilityTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Lactation Room", types[0].Name)
}
