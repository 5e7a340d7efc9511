package parse

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel every *Error unwraps to.
var ErrParse = errors.New("parse error")

// maxWindow bounds the source excerpt rendered around an error.
const maxWindow = 50

// Error is a lexical or syntactic parse failure. It records the byte
// offset and text of the offending token and keeps the full input so
// Error can render a source window around the failure point. The
// parser reports the first failure only; later ones are discarded.
type Error struct {
	// Pos is the byte offset of the offending token. The end of
	// input token sits at len(Input).
	Pos int
	// Tok is the offending token's text, empty for invalid and end
	// of input tokens.
	Tok string
	// Input is the complete text handed to Parse.
	Input []byte
	// Reason says what the parser expected.
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error at position %d[%s]: %s \nError Reason: %s",
		e.Pos, e.Tok, e.window(), e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

// window excerpts the input around Pos and splices in a marker. The
// marker is omitted when the error sits on the first byte of the
// excerpt.
func (e *Error) window() string {
	if e.Pos >= len(e.Input) {
		return "Error position out of bounds"
	}
	start := 0
	if e.Pos >= maxWindow {
		start = e.Pos - maxWindow
	}
	diff := e.Pos - start
	end := e.Pos + maxWindow + diff
	if end > len(e.Input) {
		end = len(e.Input)
	}
	loc := string(e.Input[start:end])
	if diff > 0 {
		loc = loc[:diff] + " *ERROR*--> " + loc[diff:]
	}
	return loc
}
