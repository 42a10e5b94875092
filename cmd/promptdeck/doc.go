// Promptdeck is a CLI for composing AI review prompt modules and scoring
// review sessions.
//
// It resolves selection criteria (explicit module ids, goal tags, a token
// budget) against a module manifest into a deterministic execution plan,
// composes the planned modules into one prompt artifact, and scores recorded
// findings (P0-P3) into a risk report with deterministic exit codes suitable
// for CI gating.
//
// Usage:
//
//	promptdeck resolve --goal security --budget 8000   # plan a module set
//	promptdeck compose --explicit core-principles      # emit a prompt artifact
//	promptdeck score --session findings.yaml           # score a review session
//	promptdeck modules --tag go                        # list modules by tag
//	promptdeck validate                                # check the manifest
//
// See https://github.com/dshills/promptdeck for full documentation.
package main
