// Package stats produces descriptive reports over tabular datasets:
// shape and column-kind profiles, head/tail previews, numeric summaries,
// missing-value quality checks, and categorical value counts. Reports are
// written as plain text files for inspection alongside the prepared data.
package stats
