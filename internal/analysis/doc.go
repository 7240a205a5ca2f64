// Package analysis extracts summary statistics from recorded
// simulation series.
//
//   - [PowerSpectrum]: magnitude spectrum of a sampled series
//   - [DominantPeriod]: strongest cycle length, used for orbital period
//     estimation from distance histories
package analysis
