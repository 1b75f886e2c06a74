// Package services contains the stateless domain services of the order
// engine: the export validator, the XML export builder, and the sequence
// allocator.
//
// The three services split the export path into independently testable
// stages. The validator decides export-readiness and reports every failing
// check at once. The builder serializes an already-validated order into the
// document format the downstream ERP consumes and does not re-validate. The
// allocator assigns the ERP sequence number exactly once per order, using
// the backing store's atomic increment through a narrow counter interface.
//
// None of the services hold mutable state of their own; all state lives in
// the order aggregate and behind the counter interface.
package services
