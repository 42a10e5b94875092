// Package session collects review findings and scores them into a report.
//
// A [Session] starts empty, accepts findings while open, and is finalized
// exactly once. Finalizing computes a [Report]: severity tallies, an
// optional checklist percentage, and a risk level derived from the highest
// severity present (any P0 is Critical, else P1 is High, else P2 is Medium,
// else Low).
//
// Sessions are single-writer. Callers that share a session across
// goroutines must serialize Record calls themselves; the package imposes no
// internal locking.
package session
