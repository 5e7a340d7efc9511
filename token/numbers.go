package token

// numberByte reports whether c can appear in a number token. The
// scanner absorbs the maximal run of these bytes; whether the run is
// a well-formed number is the parser's call.
func numberByte(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	case '.', '-', '+', 'e', 'E':
		return true
	default:
		return false
	}
}

// IsFloat reports whether a number literal reads as a float. A
// literal with no fraction dot and no exponent is an integer.
func IsFloat(d []byte) bool {
	for _, c := range d {
		switch c {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}
