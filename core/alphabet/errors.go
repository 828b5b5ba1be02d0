package alphabet

import "fmt"

// UnrecognizedSymbolError reports a residue with no code in the alphabet,
// such as an IUPAC ambiguity code in a DNA sequence.
type UnrecognizedSymbolError struct {
	Alphabet string
	Symbol   byte
	Pos      int // 0-based position in the input
}

func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("unrecognized symbol %q at position %d for alphabet %s", e.Symbol, e.Pos+1, e.Alphabet)
}
