// Package cli implements the promptdeck command-line interface.
//
// Commands: resolve, compose, score, modules, validate, config, version.
// Resolution failures map to deterministic exit codes suitable for CI
// gating: 2 for an infeasible token budget, 3 for dependency-graph errors
// (cycles, unknown dependencies), 4 for unknown module ids, and 1 for
// everything else.
package cli
