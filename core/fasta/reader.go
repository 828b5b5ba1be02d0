// core/fasta/reader.go
package fasta

import (
	"context"
)

// ReadAll collects every record of path. On error the records read so far
// are returned with it.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := StreamPathCtx(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	return recs, err
}
