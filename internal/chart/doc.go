// Package chart renders tabular data into plot objects.
//
// Charts are described declaratively: an aesthetic mapping (Aes) names the
// columns bound to x, y, color grouping and sampling weight, and a Geom
// selects the geometry (line, point, bar, histogram, box). Render dispatches
// on the geometry and returns a *Chart wrapping a gonum plot, which the
// exporter serializes to PNG.
//
// Ordering of categorical axes always comes from a dataset.Factor, never
// from data order. Sampling weights apply to bar and histogram geometries;
// the box geometry has no weighted form and ignores them.
package chart
