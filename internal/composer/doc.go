// Package composer concatenates resolved module content into a single
// prompt artifact.
//
// Content blobs come from a [Loader] keyed by module id and are treated as
// opaque strings: never reparsed, never mutated. Modules are emitted
// strictly in plan order. Declared token estimates are approximate metadata,
// so a composed artifact that measures larger than the plan's total only
// produces a warning, never an error.
package composer
