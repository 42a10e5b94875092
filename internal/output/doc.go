// Package output formats execution plans and score reports for display or
// machine consumption.
//
// Three formats are supported:
//   - text     — human-readable terminal output (default)
//   - json     — full structured JSON
//   - markdown — PR-comment-friendly summary tables
//
// Use [NewPlanWriter] or [NewReportWriter] to obtain a writer for a format
// string. [WritePlan] and [WriteReport] are convenience helpers that handle
// destination selection (file path or stdout).
package output
