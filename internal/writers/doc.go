// Package writers turns k-mer count profiles into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (labels, TSV columns, JSON).
//   - Pipeline stays orchestration-only and never formats anything.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
