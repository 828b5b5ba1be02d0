// core/alphabet/alphabet.go
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

// none marks a byte with no code in an Alphabet's lookup table.
const none = -1

// ErrUnknownAlphabet is returned by Lookup for names it does not know.
var ErrUnknownAlphabet = errors.New("unknown alphabet")

// Alphabet is a fixed, ordered symbol set. Symbol i has code i; codes are dense
// in [0, Size()) and never change once the alphabet is built.
type Alphabet struct {
	name    string
	symbols []byte
	table   [256]int16
}

// New builds an alphabet from an ordered symbol list. Lowercase letters are
// accepted as aliases of their uppercase symbol. Extra aliases (e.g. 'U' for
// 'T') can be given as pairs alias→symbol.
func New(name string, symbols string, aliases map[byte]byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("alphabet %s: no symbols", name)
	}
	if len(symbols) > 255 {
		return nil, fmt.Errorf("alphabet %s: %d symbols exceed 255", name, len(symbols))
	}
	a := &Alphabet{name: name, symbols: []byte(symbols)}
	for i := range a.table {
		a.table[i] = none
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.table[c] != none {
			return nil, fmt.Errorf("alphabet %s: duplicate symbol %q", name, c)
		}
		a.table[c] = int16(i)
	}
	// lowercase mirrors uppercase unless the lowercase byte is itself a symbol
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= 'A' && c <= 'Z' {
			lc := c + ('a' - 'A')
			if a.table[lc] == none {
				a.table[lc] = int16(i)
			}
		}
	}
	for alias, sym := range aliases {
		code := a.table[sym]
		if code == none {
			return nil, fmt.Errorf("alphabet %s: alias %q targets unknown symbol %q", name, alias, sym)
		}
		if a.table[alias] == none {
			a.table[alias] = code
		}
		if alias >= 'A' && alias <= 'Z' && a.table[alias+('a'-'A')] == none {
			a.table[alias+('a'-'A')] = code
		}
	}
	return a, nil
}

func mustNew(name, symbols string, aliases map[byte]byte) *Alphabet {
	a, err := New(name, symbols, aliases)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the alphabet's short name ("dna", "rna", "aa", ...).
func (a *Alphabet) Name() string { return a.name }

// Size is the number of symbols (A).
func (a *Alphabet) Size() int { return len(a.symbols) }

// Symbols returns a copy of the ordered symbol list.
func (a *Alphabet) Symbols() []byte { return append([]byte(nil), a.symbols...) }

// Code returns the code of residue c and whether c is mapped.
func (a *Alphabet) Code(c byte) (uint8, bool) {
	v := a.table[c]
	if v == none {
		return 0, false
	}
	return uint8(v), true
}

// Symbol returns the canonical symbol for code, or 0 when code is out of range.
func (a *Alphabet) Symbol(code uint8) byte {
	if int(code) >= len(a.symbols) {
		return 0
	}
	return a.symbols[code]
}

// Text renders codes back into canonical symbols. Codes outside the alphabet
// are rendered as '?'.
func (a *Alphabet) Text(codes []uint8) string {
	var sb strings.Builder
	sb.Grow(len(codes))
	for _, c := range codes {
		if s := a.Symbol(c); s != 0 {
			sb.WriteByte(s)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// Encode converts a whole sequence to codes in one pass.
func (a *Alphabet) Encode(seq []byte) ([]uint8, error) {
	out := make([]uint8, len(seq))
	for i, c := range seq {
		code, ok := a.Code(c)
		if !ok {
			return nil, &UnrecognizedSymbolError{Alphabet: a.name, Symbol: c, Pos: i}
		}
		out[i] = code
	}
	return out, nil
}
