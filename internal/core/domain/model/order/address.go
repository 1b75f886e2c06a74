package order

import "time"

// ShipTo is the shipping address block captured from the customer document.
// It carries no construction invariants on purpose: upstream extraction may
// leave any field empty, and completeness is judged by the export validator
// rather than at construction time.
type ShipTo struct {
	Line1      string
	Line2      string
	Line3      string
	Line4      string
	City       string
	State      string
	PostalCode string
}

// Cancellation records who cancelled an order, when, and why.
// The three fields are set and cleared together, never individually.
type Cancellation struct {
	Actor  string
	At     time.Time
	Reason string
}

// ExportRecord records who exported an order and when.
type ExportRecord struct {
	Actor string
	At    time.Time
}
