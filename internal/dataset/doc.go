// Package dataset provides the in-memory tabular model shared by the
// preparation pipeline and the reporting tools.
//
// A Table is column names plus rows of string cells, loaded fully into
// memory from CSV or Excel. Cells stay strings throughout; typed views
// (nullable integers, dates) are produced by the packages that interpret
// them. CSV output is atomic: a failed run leaves no partial file.
package dataset
