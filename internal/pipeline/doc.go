// Package pipeline streams sequence records through k-mer counters and hands
// each finished Profile to a visit callback.
//
// Three shapes are supported: one profile per record (ForEachProfile, order
// preserving), one profile for all records (Accumulate), and a count matrix
// with one view per record (ForEachMatrixProfile).
package pipeline
