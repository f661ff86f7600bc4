// Package domain defines the core model types for the archigen AMEFF generator.
//
// This package contains the entities that make up an ArchiMate Model Exchange
// Format document: typed elements, typed directed relationships, localized
// text, property definitions, and the organization tree used by importers to
// render a navigable folder structure.
//
// # Core Types
//
// Element represents a typed node in the topology graph (location, technology
// service, communication network, device, or cluster node) with a localized
// display name and an ordered list of properties.
//
// Relationship represents a typed directed edge between two elements
// (composition, aggregation, association, realization).
//
// Model is the root aggregate holding elements, relationships, the
// organization tree, and property definitions in insertion order. Insertion
// order is preserved verbatim through rendering because some importers treat
// element order as display order.
//
// # Identifiers
//
// All identifiers are deterministic, human-traceable strings produced by the
// allocator functions in ids.go. Element and relationship identifiers live in
// disjoint namespaces (id-* vs r-*). Regenerating a model from identical
// parameters yields byte-identical identifiers.
//
// # Invariants
//
// Model.Validate checks referential integrity: distinct identifiers, resolvable
// relationship endpoints and property definition references, and exactly-once
// coverage of elements in the organization tree. A violation is a programming
// fault in the assembler, not a recoverable condition.
//
// # Design Principles
//
// - Immutable after assembly; no mutation path past Validate
// - No I/O or external dependencies
// - Closed type-tag enumerations instead of free-form strings
package domain
