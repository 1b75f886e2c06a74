// Package kernel contains shared building blocks used by every domain model
// in the order portal. It currently provides the UUID value object that
// identifies orders, order lines, and trail records.
//
// Kernel types are immutable value objects: the zero value is invalid and
// instances must be created through the provided constructors so that
// validation cannot be bypassed.
package kernel
