// Package order provides domain entities and business logic for website-build
// orders. It implements the Order aggregate root with lifecycle management,
// a derived progress value, and an append-only audit timeline.
//
// The package includes:
//   - Order: The aggregate root that manages identity, payment state, requirements,
//     delivered files, and the audit timeline
//   - Status: A state machine describing the build workflow
//   - Plan: The fixed service tiers and their prices
//   - Requirements, TimelineEvent, DeliveredFile: value objects
//
// Key business rules:
//   - Orders are created in pending status with an initial "Order received"
//     timeline entry and an estimated delivery date 14 days out
//   - Each committed status change appends exactly one timeline entry and
//     derives progress from a fixed table; cancelling freezes progress
//   - The first file delivered while the order is in development automatically
//     moves it to revision
//   - The timeline and the delivered file list are append-only
//   - The owner never changes after creation
//
// Concurrent writers are not reconciled: a mutation is a plain read-modify-write
// and the later write wins. The package follows Domain-Driven Design principles,
// providing rich domain behavior, encapsulation, and validation to ensure
// business rules are enforced.
package order
