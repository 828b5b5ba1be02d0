// Package kmer counts k-mers by treating each k-mer over an alphabet of size A
// as a base-A integer in [0, A^K) and using it as an index into a count store.
//
// Layout:
//   - Store is the only capability a backing array needs: length, indexed
//     read/write, increment and zero-fill. Dense and Sparse implement it, and
//     Matrix hands out row/column views that implement it too.
//   - Counts ties a Store to (A, K). Count / CountIndices mutate it in place.
//   - Matrix groups N Counts sharing A and K in one column-major backing slice.
//
// Indexing uses flat vectors only. A K-dimensional array of extent A in every
// dimension, indexed row-major, collapses to the same positional formula, so
// Index/Decode are the complete mapping between k-mers and vector positions.
//
// Nothing here locks. Counting into different Counts (or disjoint Matrix
// views) from different goroutines is safe; sharing one Counts is not.
package kmer
