// Package catalog holds the catalog records the admin console edits. Records
// mirror the backend's JSON documents; the client keeps only transient copies.
package catalog

import "github.com/shopspring/decimal"

func init() {
	// The backend exchanges money as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Entity is implemented by every record managed through a list screen
type Entity interface {
	GetID() string
	DisplayName() string
}

// Timestamps carries the server-maintained audit fields
type Timestamps struct {
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Address is the postal address shared by publishers, suppliers and warehouses
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsEmpty reports whether every address line is blank
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// Dimensions of a physical product
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Stats is the free-form statistics/summary payload some collections expose
type Stats map[string]any
