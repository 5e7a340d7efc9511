package token

// Scanner turns JSON-like text into a lookahead-1 token stream. It
// never fails on its own: malformed input becomes TInvalid tokens and
// the parser decides what to make of them.
type Scanner struct {
	d   []byte
	pos int
	la  *Token
}

func NewScanner(d []byte) *Scanner {
	s := &Scanner{}
	s.Init(d)
	return s
}

// Init points the scanner at d and clears the lookahead buffer. A
// zero Scanner followed by Init is ready to use.
func (s *Scanner) Init(d []byte) {
	s.d = d
	s.pos = 0
	s.la = nil
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() Token {
	if s.la == nil {
		t := s.next()
		s.la = &t
	}
	return *s.la
}

// Get returns the next token and advances past it.
func (s *Scanner) Get() Token {
	t := s.Peek()
	s.la = nil
	return t
}

func (s *Scanner) next() Token {
	s.skipSpace()
	if s.pos >= len(s.d) {
		return Token{Type: TEOF, Pos: s.pos}
	}
	c := s.d[s.pos]
	switch c {
	case '{':
		return s.punct(TLCurl)
	case '}':
		return s.punct(TRCurl)
	case '[':
		return s.punct(TLSquare)
	case ']':
		return s.punct(TRSquare)
	case ',':
		return s.punct(TComma)
	case ':':
		return s.punct(TColon)
	case '"':
		return s.scanString()
	case 'n':
		return s.scanWord(TNull, "null")
	case 't':
		return s.scanWord(TTrue, "true")
	case 'f':
		return s.scanWord(TFalse, "false")
	}
	if numberByte(c) {
		return s.scanNumber()
	}
	// unknown leading byte, not consumed
	return Token{Type: TInvalid, Pos: s.pos}
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.d) {
		switch s.d[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) punct(t TokenType) Token {
	tok := Token{Type: t, Pos: s.pos, Bytes: s.d[s.pos : s.pos+1]}
	s.pos++
	return tok
}

// scanString reads a quoted string. On a backslash both the backslash
// and the byte after it are kept verbatim, so the token bytes are an
// exact slice of the input between the quotes. A string with no
// closing quote runs to the end of the input.
func (s *Scanner) scanString() Token {
	start := s.pos
	s.pos++
	b := s.pos
	for s.pos < len(s.d) {
		switch s.d[s.pos] {
		case '\\':
			s.pos += 2
		case '"':
			tok := Token{Type: TString, Pos: start, Bytes: s.d[b:s.pos]}
			s.pos++
			return tok
		default:
			s.pos++
		}
	}
	if s.pos > len(s.d) {
		s.pos = len(s.d)
	}
	return Token{Type: TString, Pos: start, Bytes: s.d[b:s.pos]}
}

// scanWord matches a fixed literal at the current position. A
// mismatch yields an invalid token and leaves the position alone.
func (s *Scanner) scanWord(t TokenType, word string) Token {
	start := s.pos
	if len(s.d)-start >= len(word) && string(s.d[start:start+len(word)]) == word {
		s.pos += len(word)
		return Token{Type: t, Pos: start, Bytes: s.d[start:s.pos]}
	}
	return Token{Type: TInvalid, Pos: start}
}

func (s *Scanner) scanNumber() Token {
	start := s.pos
	for s.pos < len(s.d) && numberByte(s.d[s.pos]) {
		s.pos++
	}
	return Token{Type: TNumber, Pos: start, Bytes: s.d[start:s.pos]}
}
