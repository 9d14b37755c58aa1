// Package kernel provides core domain primitives for the dispatch system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Address: A value object for delivery destinations, with the canonical
//     single-line formatting used by delivery records and downstream services
//   - CityOf: The inverse operation that recovers the city component from a
//     formatted address for driver directory lookups
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
