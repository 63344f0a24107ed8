// Package dataset provides loading and transformation of the tabular
// datasets the pipeline charts from.
//
// The package is organized into three main components:
//
// 1. Loader: reads headered CSV files into typed gota data frames
// 2. Reshaper: pivots wide measurement columns into long key/value form
// 3. Factor: recodes a string column onto a fixed ordered level list,
// with per-row sampling weights aggregated per level
//
// All transformations are pure with respect to their inputs: source frames
// are never mutated, every operation returns a derived frame or slice.
package dataset
