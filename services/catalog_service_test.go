package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

const destinationsJSON = `{
  "destinations": [
    {"id": "mars", "name": "Mars Colony", "price": 10000, "travelDuration": "3 days",
     "accommodations": ["suite", "pod"]},
    {"id": "europa", "name": "Europa Station", "price": 95000, "travelDuration": "5-6 months",
     "accommodations": ["pod"]}
  ]
}`

const accommodationsJSON = `{
  "accommodations": [
    {"id": "pod", "name": "Sleep Pod", "pricePerDay": 50},
    {"id": "suite", "name": "Orbital Suite", "pricePerDay": 300}
  ]
}`

// catalogServer serves the two catalog documents, with per-path overrides
// for failure scenarios
func catalogServer(t *testing.T, overrides map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	if _, ok := overrides["/destinations.json"]; !ok {
		mux.HandleFunc("/destinations.json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(destinationsJSON))
		})
	}
	if _, ok := overrides["/accommodations.json"]; !ok {
		mux.HandleFunc("/accommodations.json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(accommodationsJSON))
		})
	}
	for path, h := range overrides {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadCatalog(t *testing.T) {
	srv := catalogServer(t, nil)

	c, err := LoadCatalog(context.Background(), srv.URL+"/destinations.json", srv.URL+"/accommodations.json")
	require.NoError(t, err)

	assert.Len(t, c.Destinations(), 2)
	assert.Len(t, c.Accommodations(), 2)

	mars, err := c.DestinationByID("mars")
	require.NoError(t, err)
	assert.Equal(t, "Mars Colony", mars.Name)
	assert.Equal(t, 10000.0, mars.Price)

	pod, err := c.AccommodationByID("pod")
	require.NoError(t, err)
	assert.Equal(t, 50.0, pod.PricePerDay)

	_, err = c.DestinationByID("pluto")
	assert.ErrorIs(t, err, ErrUnknownDestination)
	_, err = c.AccommodationByID("tent")
	assert.ErrorIs(t, err, ErrUnknownAccommodation)
}

func TestLoadCatalogBothOrNeither(t *testing.T) {
	t.Run("failed accommodations fetch fails the whole load", func(t *testing.T) {
		srv := catalogServer(t, map[string]http.HandlerFunc{
			"/accommodations.json": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		})
		c, err := LoadCatalog(context.Background(), srv.URL+"/destinations.json", srv.URL+"/accommodations.json")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})

	t.Run("malformed json fails the whole load", func(t *testing.T) {
		srv := catalogServer(t, map[string]http.HandlerFunc{
			"/destinations.json": func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"destinations": [`))
			},
		})
		c, err := LoadCatalog(context.Background(), srv.URL+"/destinations.json", srv.URL+"/accommodations.json")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})

	t.Run("empty document rejected", func(t *testing.T) {
		srv := catalogServer(t, map[string]http.HandlerFunc{
			"/destinations.json": func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"destinations": []}`))
			},
		})
		c, err := LoadCatalog(context.Background(), srv.URL+"/destinations.json", srv.URL+"/accommodations.json")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})

	t.Run("unreachable source rejected", func(t *testing.T) {
		srv := catalogServer(t, nil)
		c, err := LoadCatalog(context.Background(), "http://127.0.0.1:1/destinations.json", srv.URL+"/accommodations.json")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})
}

func TestAccommodationsFor(t *testing.T) {
	srv := catalogServer(t, nil)
	c, err := LoadCatalog(context.Background(), srv.URL+"/destinations.json", srv.URL+"/accommodations.json")
	require.NoError(t, err)

	t.Run("catalog order preserved regardless of listing order", func(t *testing.T) {
		// mars lists ["suite", "pod"] but the accommodations table puts pod first
		mars, err := c.DestinationByID("mars")
		require.NoError(t, err)
		offered := c.AccommodationsFor(mars)
		require.Len(t, offered, 2)
		assert.Equal(t, "pod", offered[0].ID)
		assert.Equal(t, "suite", offered[1].ID)
	})

	t.Run("unknown ids in the listing are skipped", func(t *testing.T) {
		ghost := &models.Destination{ID: "ghost", Accommodations: []string{"pod", "igloo"}}
		offered := c.AccommodationsFor(ghost)
		require.Len(t, offered, 1)
		assert.Equal(t, "pod", offered[0].ID)
	})
}

func TestGetCatalogDegraded(t *testing.T) {
	InitCatalog(nil)
	t.Cleanup(func() { InitCatalog(nil) })

	_, err := GetCatalog()
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
