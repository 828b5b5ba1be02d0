// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when --examples was given.
// Callers print the examples and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a short quickstart for name.
func PrintExamples(out io.Writer, name string) {
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # 3-mer counts of every record, one TSV row per k-mer\n  %s -k 3 genome.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # only observed 21-mers, sparse storage, JSON Lines\n  %s -k 21 --store sparse --nonzero -o jsonl reads.fq.gz\n\n", name)
	_, _ = fmt.Fprintf(out, "  # one profile for all records, ten most frequent dipeptides\n  %s -k 2 -a aa --merge --top 10 proteins.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # count matrix with one row per record, 16-bit counts\n  %s -k 4 --layout rows --type uint16 seqs.fa\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
