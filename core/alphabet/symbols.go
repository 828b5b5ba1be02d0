package alphabet

// Codes is a lazy stream of symbol codes. Next returns ok=false once the
// stream is exhausted; a non-nil error aborts the stream.
type Codes interface {
	Next() (code uint8, ok bool, err error)
}

// Symbols lazily encodes a residue sequence. It keeps only its position as
// state, never allocates, and can be restarted with Reset.
type Symbols struct {
	alpha *Alphabet
	seq   []byte
	pos   int
}

// NewSymbols returns an encoder over seq. seq is not copied.
func (a *Alphabet) NewSymbols(seq []byte) *Symbols {
	return &Symbols{alpha: a, seq: seq}
}

// Next yields the code of the next residue.
func (s *Symbols) Next() (uint8, bool, error) {
	if s.pos >= len(s.seq) {
		return 0, false, nil
	}
	c := s.seq[s.pos]
	code, ok := s.alpha.Code(c)
	if !ok {
		return 0, false, &UnrecognizedSymbolError{Alphabet: s.alpha.name, Symbol: c, Pos: s.pos}
	}
	s.pos++
	return code, true, nil
}

// Len is the total number of residues (codes) the stream yields.
func (s *Symbols) Len() int { return len(s.seq) }

// Reset rewinds the stream to the first residue.
func (s *Symbols) Reset() { s.pos = 0 }

// SliceCodes adapts pre-encoded codes to Codes. Values are not validated here;
// the counter range-checks them against its alphabet size.
type SliceCodes struct {
	codes []uint8
	pos   int
}

// FromCodes wraps codes without copying.
func FromCodes(codes []uint8) *SliceCodes { return &SliceCodes{codes: codes} }

func (s *SliceCodes) Next() (uint8, bool, error) {
	if s.pos >= len(s.codes) {
		return 0, false, nil
	}
	c := s.codes[s.pos]
	s.pos++
	return c, true, nil
}

func (s *SliceCodes) Len() int { return len(s.codes) }

func (s *SliceCodes) Reset() { s.pos = 0 }
