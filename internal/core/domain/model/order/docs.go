// Package order provides the domain model for sales orders flowing through
// the review-and-export portal. It implements the Order aggregate root with
// its lifecycle state machine, order lines, and the shipping address block.
//
// The package includes:
//   - Order: the aggregate root carrying identity, ship-to data, sequence
//     number, cancellation/export metadata, and the order lines
//   - Status: a state machine enforcing the legal lifecycle transitions,
//     persisted as two-digit string codes ("01".."06")
//   - Line: an order line with its own active/cancelled status, independent
//     of the parent order's status
//   - ShipTo: the shipping address value object
//
// Key business rules:
//   - Orders start in Pending and are mutated only through transition methods
//   - The sequence number is assigned at most once and is immutable afterwards,
//     even when the order is later cancelled
//   - Cancellation metadata (actor, timestamp, reason) is recorded and cleared
//     all-or-nothing
//   - Restoring a cancelled order returns it to UnderReview and forces every
//     line back to active
//   - Line numbers are stable ordering identifiers, never sequence generators
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and explicit factory functions for new aggregates
// (NewOrder) and for reconstruction from persistence (RestoreOrder).
package order
