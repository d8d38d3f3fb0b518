// Package kernel provides shared value objects used across the domain model.
//
// The package currently contains the UUID value object, which wraps
// github.com/google/uuid to guarantee that order and customer identifiers are
// always constructed and validated before use. Value objects in this package
// are immutable and safe for concurrent use.
package kernel
