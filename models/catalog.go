package models

// Destination represents a space destination from the destinations catalog
type Destination struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	TravelDuration string   `json:"travelDuration"` // free text, e.g. "3 days", "5-6 months"
	Distance       string   `json:"distance"`
	Gravity        string   `json:"gravity"`
	Temperature    string   `json:"temperature"`
	Price          float64  `json:"price"`
	Currency       string   `json:"currency"`
	Accommodations []string `json:"accommodations"` // ids of accommodations available there
}

// Accommodation represents an accommodation option from the accommodations catalog
type Accommodation struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ShortDescription string  `json:"shortDescription"`
	Size             string  `json:"size"`
	Occupancy        string  `json:"occupancy"`
	PricePerDay      float64 `json:"pricePerDay"`
}

// DestinationsDocument is the wire format of the destinations catalog
type DestinationsDocument struct {
	Destinations []Destination `json:"destinations"`
}

// AccommodationsDocument is the wire format of the accommodations catalog
type AccommodationsDocument struct {
	Accommodations []Accommodation `json:"accommodations"`
}
