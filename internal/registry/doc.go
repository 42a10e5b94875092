// Package registry stores prompt module metadata and validates the
// dependency graph.
//
// A [Registry] is populated once at startup, either directly through
// [Registry.Register] or from a YAML manifest via [LoadManifest], and then
// sealed with [Registry.Seal]. Sealing validates that every declared
// dependency exists and that the dependency relation forms a DAG; after a
// successful seal the registry is immutable and safe for concurrent readers
// without locking.
//
// Module lookups preserve registration order, which downstream consumers
// rely on for deterministic plan ordering.
package registry
