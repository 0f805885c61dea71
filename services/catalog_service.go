package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/yahiasanji/spaceodysseybooking/models"
)

var (
	catalogMu sync.RWMutex
	catalog   *Catalog
)

// Catalog holds the immutable destination and accommodation reference
// tables for the session. Either both tables are ready or neither is.
type Catalog struct {
	destinations   []models.Destination
	accommodations []models.Accommodation
	destIndex      map[string]int
	accIndex       map[string]int
}

var catalogClient = &http.Client{Timeout: 10 * time.Second}

// LoadCatalog fetches and parses both catalog documents. Any fetch or parse
// failure yields ErrCatalogUnavailable; no partial catalog is ever returned.
func LoadCatalog(ctx context.Context, destinationsURL, accommodationsURL string) (*Catalog, error) {
	var destDoc models.DestinationsDocument
	if err := fetchJSON(ctx, destinationsURL, &destDoc); err != nil {
		return nil, fmt.Errorf("%w: destinations: %v", ErrCatalogUnavailable, err)
	}

	var accDoc models.AccommodationsDocument
	if err := fetchJSON(ctx, accommodationsURL, &accDoc); err != nil {
		return nil, fmt.Errorf("%w: accommodations: %v", ErrCatalogUnavailable, err)
	}

	if len(destDoc.Destinations) == 0 || len(accDoc.Accommodations) == 0 {
		return nil, fmt.Errorf("%w: document is empty or not in the expected schema", ErrCatalogUnavailable)
	}

	return NewCatalog(destDoc.Destinations, accDoc.Accommodations), nil
}

func fetchJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := catalogClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// NewCatalog builds the in-memory tables from already-parsed records
func NewCatalog(destinations []models.Destination, accommodations []models.Accommodation) *Catalog {
	c := &Catalog{
		destinations:   destinations,
		accommodations: accommodations,
		destIndex:      make(map[string]int, len(destinations)),
		accIndex:       make(map[string]int, len(accommodations)),
	}
	for i, d := range destinations {
		c.destIndex[d.ID] = i
	}
	for i, a := range accommodations {
		c.accIndex[a.ID] = i
	}
	return c
}

// InitCatalog installs the loaded catalog for the rest of the system
func InitCatalog(c *Catalog) {
	catalogMu.Lock()
	catalog = c
	catalogMu.Unlock()
}

// GetCatalog returns the loaded catalog, or ErrCatalogUnavailable while the
// system is running degraded
func GetCatalog() (*Catalog, error) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	return catalog, nil
}

// Destinations returns all destinations in catalog order
func (c *Catalog) Destinations() []models.Destination {
	out := make([]models.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// Accommodations returns all accommodations in catalog order
func (c *Catalog) Accommodations() []models.Accommodation {
	out := make([]models.Accommodation, len(c.accommodations))
	copy(out, c.accommodations)
	return out
}

// DestinationByID looks up a destination by id
func (c *Catalog) DestinationByID(id string) (*models.Destination, error) {
	i, ok := c.destIndex[id]
	if !ok {
		return nil, ErrUnknownDestination
	}
	d := c.destinations[i]
	return &d, nil
}

// AccommodationByID looks up an accommodation by id
func (c *Catalog) AccommodationByID(id string) (*models.Accommodation, error) {
	i, ok := c.accIndex[id]
	if !ok {
		return nil, ErrUnknownAccommodation
	}
	a := c.accommodations[i]
	return &a, nil
}

// AccommodationsFor returns the accommodations offered at a destination,
// preserving catalog order. Ids the accommodations table does not know are
// skipped.
func (c *Catalog) AccommodationsFor(dest *models.Destination) []models.Accommodation {
	available := make(map[string]bool, len(dest.Accommodations))
	for _, id := range dest.Accommodations {
		available[id] = true
	}

	var out []models.Accommodation
	for _, a := range c.accommodations {
		if available[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
