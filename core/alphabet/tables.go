package alphabet

import "fmt"

/* ----------------------------- built-in tables ---------------------------- */

// DNA codes: A=0 C=1 G=2 T=3. Alphabetical order equals numeric order, and
// code^3 is the Watson–Crick complement.
var DNA = mustNew("dna", "ACGT", nil)

// RNA shares the DNA codes with U in place of T.
var RNA = mustNew("rna", "ACGU", nil)

// AminoAcid is the 28-letter protein alphabet: the 20 standard residues,
// pyrrolysine (O), selenocysteine (U), the ambiguity codes B, J, Z, X,
// the stop '*' and the gap '-'.
var AminoAcid = mustNew("aa", "ARNDCQEGHILKMFPSTWYVOUBJZX*-", nil)

// Lookup resolves a CLI-style alphabet name.
func Lookup(name string) (*Alphabet, error) {
	switch name {
	case "dna", "DNA", "nt":
		return DNA, nil
	case "rna", "RNA":
		return RNA, nil
	case "aa", "AA", "protein":
		return AminoAcid, nil
	}
	return nil, fmt.Errorf("%w %q (want dna | rna | aa)", ErrUnknownAlphabet, name)
}

// Complement returns the complement of a DNA/RNA code.
func Complement(code uint8) uint8 { return code ^ 3 }

// ReverseComplement returns the reverse complement of a nucleotide code slice.
func ReverseComplement(codes []uint8) []uint8 {
	n := len(codes)
	if n == 0 {
		return nil
	}
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = codes[n-1-i] ^ 3
	}
	return out
}
