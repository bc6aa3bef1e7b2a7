// Package prep implements the games data preparation pipeline.
//
// The pipeline takes the raw games table and the committee code reference
// table and produces the prepared table: low-value columns dropped, known
// bad rows removed by position, the season column normalized, counts
// coerced to nullable integers, dates parsed with a derived whole-day
// duration, and countries resolved to committee codes through a fixed
// alias map and a left-outer join.
//
// Failure policy: schema, bounds, and date-parse failures abort the run;
// numeric cells that fail to parse become the missing marker and the run
// continues. Persistence is the caller's job (see dataset.WriteCSV), so a
// failed run writes nothing.
package prep
