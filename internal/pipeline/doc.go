// Package pipeline runs the exploratory visualization sequence end to end.
//
// The sequence is deliberately linear: load the rates time series, reshape
// it wide to long, render line and scatter variants; load the survey,
// recode the severity column as an ordered factor, render weighted bar,
// histogram and box charts; then relabel the long rates data and export a
// publication-labeled final chart. Each step logs a short note naming the
// concept it demonstrates, so a run reads like the worked example it is.
package pipeline
